package platform

import (
	"fmt"
	"strings"
)

func psQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	return "'" + escaped + "'"
}

// toastScript builds the PowerShell snippet that shows a Windows toast.
// An icon switches to the image-and-text template.
func toastScript(title, body string, opts Options) string {
	icon := strings.TrimSpace(opts.IconPath)
	tmpl := "ToastText02"
	if icon != "" {
		tmpl = "ToastImageAndText02"
	}
	var sb strings.Builder
	sb.WriteString(`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; `)
	fmt.Fprintf(&sb, `$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); `, tmpl)
	sb.WriteString(`$texts = $template.GetElementsByTagName("text"); `)
	fmt.Fprintf(&sb, `$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(title))
	fmt.Fprintf(&sb, `$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(body))
	if icon != "" {
		sb.WriteString(`$image = $template.GetElementsByTagName("image").Item(0); `)
		fmt.Fprintf(&sb, `$image.SetAttribute("src", %s); `, psQuote(icon))
	}
	sb.WriteString(`$toast = [Windows.UI.Notifications.ToastNotification]::new($template); `)
	fmt.Fprintf(&sb, `$notifier = [Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s); `, psQuote(opts.appName()))
	sb.WriteString(`$notifier.Show($toast);`)
	return sb.String()
}
