package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeHTML = template.Must(template.New("welcome").Parse(`
<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>Welcome to DonorHive{{if .Name}}, {{.Name}}{{end}}!</h2>
  <p>Your account is registered with the email <b>{{.Email}}</b>.</p>
  <p>You can now publish blood-donation requests and appear in donor search.</p>
</body>
</html>`))

var fulfilledHTML = template.Must(template.New("request_fulfilled").Parse(`
<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>Good news{{if .RequesterName}}, {{.RequesterName}}{{end}}!</h2>
  <p>Your blood-donation request is now <b>{{.Status}}</b>.</p>
  {{if .DonorName}}<p>Donor: <b>{{.DonorName}}</b> ({{.DonorEmail}})</p>{{end}}
</body>
</html>`))

// Render produces subject, text, and html bodies for a known template name.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	var tpl *template.Template
	switch name {
	case "welcome":
		tpl = welcomeHTML
		subject = "Welcome to DonorHive"
		text = "Welcome to DonorHive. Your account is registered."
	case "request_fulfilled":
		tpl = fulfilledHTML
		subject = "Your donation request has been updated"
		text = "Your blood-donation request status changed."
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	return subject, text, buf.String(), nil
}
