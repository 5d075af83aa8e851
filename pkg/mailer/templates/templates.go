package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

// Template names accepted in EmailJob.Template.
const (
	MagicLink = "magic_link"
)

var magicLinkHTML = htmltpl.Must(htmltpl.New(MagicLink).Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Helvetica,Arial,sans-serif;background:#0b0b10;color:#e4e4e7;padding:32px">
  <table role="presentation" width="100%" style="max-width:480px;margin:0 auto">
    <tr><td>
      <h2 style="color:#ffffff;margin-bottom:4px">StudentPerks PH</h2>
      <p style="color:#a1a1aa">Hi {{.Name}}, here is your sign-in link. It expires in {{.ExpiresMinutes}} minutes.</p>
      <p style="margin:28px 0">
        <a href="{{.Link}}" style="background:#4f46e5;color:#ffffff;text-decoration:none;padding:12px 24px;border-radius:9999px;font-weight:bold">Sign in</a>
      </p>
      <p style="color:#71717a;font-size:12px">If you did not request this, ignore this email. No password is ever required.</p>
    </td></tr>
  </table>
</body>
</html>`))

var magicLinkText = texttpl.Must(texttpl.New(MagicLink).Parse(
	`Hi {{.Name}},

Sign in to StudentPerks PH with this link (expires in {{.ExpiresMinutes}} minutes):

{{.Link}}

If you did not request this, ignore this email.`))

// Render returns subject, text, and HTML bodies for the named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case MagicLink:
		var hb, tb bytes.Buffer
		if err = magicLinkHTML.Execute(&hb, data); err != nil {
			return "", "", "", err
		}
		if err = magicLinkText.Execute(&tb, data); err != nil {
			return "", "", "", err
		}
		return "Your StudentPerks PH sign-in link", tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
