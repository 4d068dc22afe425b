package template

// TemplateRenderer expands inline templates such as destination path
// patterns.
type TemplateRenderer interface {
	RenderString(templateContent string, data any) (string, error)
}
