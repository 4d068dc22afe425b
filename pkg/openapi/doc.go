// Package openapi describes the generated route surface as an OpenAPI 3
// document built with kin-openapi. The document is an optional artifact that
// sits next to the generated JavaScript so the routes can be exercised by
// contract tests downstream.
package openapi
