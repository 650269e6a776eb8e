// Package mailtemplate fills the embedded HTML email templates.
//
// Templates use a fixed set of {{Token}} placeholders which are replaced
// with HTML-escaped values from a model.EmailPayload.
package mailtemplate

import (
	"embed"
	"fmt"
	"html"
	"strings"

	"github.com/aliskhannn/task-notifier/internal/model"
)

// DueDateLayout is the format used for {{TaskDueDate}}.
const DueDateLayout = "2006-01-02 15:04"

// Kind selects a template.
type Kind string

const (
	General        Kind = "general_notification"
	TaskAssignment Kind = "task_assignment"
	Reminder       Kind = "reminder"
)

//go:embed templates/*.html
var files embed.FS

// Renderer holds the parsed template sources.
type Renderer struct {
	templates map[Kind]string
}

// New loads all embedded templates.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[Kind]string)}

	for _, kind := range []Kind{General, TaskAssignment, Reminder} {
		b, err := files.ReadFile("templates/" + string(kind) + ".html")
		if err != nil {
			return nil, fmt.Errorf("load template %s: %w", kind, err)
		}

		r.templates[kind] = string(b)
	}

	return r, nil
}

// Render returns the HTML body for kind populated from p.
func (r *Renderer) Render(kind Kind, p model.EmailPayload) (string, error) {
	tmpl, ok := r.templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown template %q", kind)
	}

	dueDate := ""
	if p.TaskDueDate != nil {
		dueDate = p.TaskDueDate.Format(DueDateLayout)
	}

	replacer := strings.NewReplacer(
		"{{UserFirstName}}", html.EscapeString(p.FirstName),
		"{{UserLastName}}", html.EscapeString(p.LastName),
		"{{NotificationMessage}}", html.EscapeString(p.Message),
		"{{TaskTitle}}", html.EscapeString(p.TaskTitle),
		"{{TaskDescription}}", html.EscapeString(p.TaskDescription),
		"{{TaskDueDate}}", dueDate,
	)

	return replacer.Replace(tmpl), nil
}
