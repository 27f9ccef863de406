// Package prompt renders the fixed instructions sent to the language model.
// The transcript is inserted exactly once and never altered.
package prompt

import (
	"embed"
	"strings"
	"text/template"
)

// Script types accepted by the multi-turn script endpoint
const (
	TypeSettings        = "settings"
	TypeCustomerService = "customer_service"
	TypeClosing         = "closing"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type data struct {
	Transcript string
}

func render(name, transcript string) string {
	var sb strings.Builder
	// Templates only reference a string field, so execution cannot fail
	if err := templates.ExecuteTemplate(&sb, name, data{Transcript: transcript}); err != nil {
		panic(err)
	}
	return sb.String()
}

// SettingsPrompt asks for a script built from a settings or customer service call
func SettingsPrompt(transcript string) string {
	return render("settings.tmpl", transcript)
}

// ClosingPrompt asks for a script built from a sales closing call
func ClosingPrompt(transcript string) string {
	return render("closing.tmpl", transcript)
}

// ObjectivePrompt asks for a templatized script in a single shot
func ObjectivePrompt(transcript string) string {
	return render("objective.tmpl", transcript)
}

// SummaryPrompt asks for a summary of the conversation
func SummaryPrompt(transcript string) string {
	return render("summary.tmpl", transcript)
}

// ForScriptType picks the settings prompt for settings and customer_service
// calls and the closing prompt for everything else.
func ForScriptType(scriptType, transcript string) string {
	if IsSettingsType(scriptType) {
		return SettingsPrompt(transcript)
	}
	return ClosingPrompt(transcript)
}

// IsSettingsType reports whether scriptType selects the settings prompt
func IsSettingsType(scriptType string) bool {
	return scriptType == TypeSettings || scriptType == TypeCustomerService
}
