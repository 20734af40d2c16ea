package notification

import (
	"fmt"
	"html/template"
	"strings"
)

// Kind identifies which notification email is being rendered.
type Kind string

const (
	KindAcceptance    Kind = "acceptance"
	KindRejection     Kind = "rejection"
	KindReschedule    Kind = "reschedule"
	KindIntakeNotice  Kind = "intake_notice"
	KindIntakeReceipt Kind = "intake_receipt"
)

func (k Kind) String() string { return string(k) }

// ContactSnapshot carries the contact fields the templates interpolate.
// All free-text fields originate from public form submissions and are
// escaped by html/template.
type ContactSnapshot struct {
	OrgName       string
	ContactName   string
	Phone         string
	Email         string
	Content       string
	Method        string
	PreferredDate string
	PreferredTime string
}

type AcceptanceParams struct {
	Contact    ContactSnapshot
	StaffName  string
	StaffEmail string
}

type RejectionParams struct {
	Contact ContactSnapshot
	Reason  string
}

type RescheduleParams struct {
	Contact      ContactSnapshot
	PreviousDate string
	PreviousTime string
	NewDate      string
	NewTime      string
	// Reason and StaffName are optional; absent values render no block.
	Reason    string
	StaffName string
}

type IntakeParams struct {
	Contact ContactSnapshot
}

const layoutHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f4f7f9;font-family:Arial,Helvetica,sans-serif;">
<div style="max-width:600px;margin:0 auto;padding:24px;">
<div style="background-color:#ffffff;border-radius:8px;padding:32px;border:1px solid #e1e8ed;">
<h1 style="font-size:20px;color:#0b3954;margin:0 0 16px 0;">{{template "title" .}}</h1>
{{template "body" .}}
<p style="font-size:12px;color:#8899a6;margin:24px 0 0 0;">Lighthouse Beach Cleanup Program</p>
</div>
</div>
</body>
</html>`

const detailsHTML = `{{define "details"}}<table style="width:100%;border-collapse:collapse;margin:16px 0;">
<tr><td style="padding:6px 0;font-size:14px;color:#657786;width:140px;">Organization</td><td style="padding:6px 0;font-size:14px;color:#14171a;">{{.Contact.OrgName}}</td></tr>
<tr><td style="padding:6px 0;font-size:14px;color:#657786;">Contact</td><td style="padding:6px 0;font-size:14px;color:#14171a;">{{.Contact.ContactName}}</td></tr>
<tr><td style="padding:6px 0;font-size:14px;color:#657786;">Method</td><td style="padding:6px 0;font-size:14px;color:#14171a;">{{.Contact.Method}}</td></tr>
<tr><td style="padding:6px 0;font-size:14px;color:#657786;">Preferred date</td><td style="padding:6px 0;font-size:14px;color:#14171a;">{{.Contact.PreferredDate}} {{.Contact.PreferredTime}}</td></tr>
</table>{{end}}`

var acceptanceTmpl = template.Must(template.Must(template.New("acceptance").Parse(layoutHTML)).Parse(detailsHTML + `
{{define "title"}}Your radio contact request has been accepted{{end}}
{{define "body"}}
<p style="font-size:14px;color:#14171a;line-height:1.6;">Hello {{.Contact.ContactName}},</p>
<p style="font-size:14px;color:#14171a;line-height:1.6;">The radio contact request from <strong>{{.Contact.OrgName}}</strong> has been accepted.</p>
{{template "details" .}}
<div style="background-color:#eaf5ef;border-radius:6px;padding:16px;margin:16px 0;">
<p style="font-size:14px;color:#14171a;margin:0;">Your assigned lighthouse keeper is <strong>{{.StaffName}}</strong> ({{.StaffEmail}}). Reply to this email to reach them directly.</p>
</div>
{{end}}`))

var rejectionTmpl = template.Must(template.Must(template.New("rejection").Parse(layoutHTML)).Parse(detailsHTML + `
{{define "title"}}About your radio contact request{{end}}
{{define "body"}}
<p style="font-size:14px;color:#14171a;line-height:1.6;">Hello {{.Contact.ContactName}},</p>
<p style="font-size:14px;color:#14171a;line-height:1.6;">We are sorry to let you know that the radio contact request from <strong>{{.Contact.OrgName}}</strong> could not be accepted.</p>
{{template "details" .}}
<div style="background-color:#fdf0ed;border-radius:6px;padding:16px;margin:16px 0;">
<p style="font-size:14px;color:#14171a;margin:0;">{{.Reason}}</p>
</div>
<p style="font-size:14px;color:#14171a;line-height:1.6;">You are welcome to submit a new request at any time.</p>
{{end}}`))

var rescheduleTmpl = template.Must(template.Must(template.New("reschedule").Parse(layoutHTML)).Parse(detailsHTML + `
{{define "title"}}Your radio contact has been rescheduled{{end}}
{{define "body"}}
<p style="font-size:14px;color:#14171a;line-height:1.6;">Hello {{.Contact.ContactName}},</p>
<p style="font-size:14px;color:#14171a;line-height:1.6;">The schedule for the radio contact with <strong>{{.Contact.OrgName}}</strong> has changed.</p>
<table style="width:100%;border-collapse:collapse;margin:16px 0;">
<tr><td style="padding:6px 0;font-size:14px;color:#657786;width:140px;">Previous</td><td style="padding:6px 0;font-size:14px;color:#657786;text-decoration:line-through;">{{.PreviousDate}} {{.PreviousTime}}</td></tr>
<tr><td style="padding:6px 0;font-size:14px;color:#657786;">New</td><td style="padding:6px 0;font-size:14px;color:#14171a;"><strong>{{.NewDate}} {{.NewTime}}</strong></td></tr>
</table>
{{if .Reason}}<div style="background-color:#fef7e8;border-radius:6px;padding:16px;margin:16px 0;">
<p style="font-size:14px;color:#14171a;margin:0;">{{.Reason}}</p>
</div>
{{end}}{{if .StaffName}}<p style="font-size:14px;color:#14171a;line-height:1.6;">Your lighthouse keeper {{.StaffName}} will be waiting at the new time. Reply to this email with any questions.</p>
{{else}}<p style="font-size:14px;color:#14171a;line-height:1.6;">Reply to this email with any questions.</p>
{{end}}{{end}}`))

var intakeNoticeTmpl = template.Must(template.Must(template.New("intake_notice").Parse(layoutHTML)).Parse(detailsHTML + `
{{define "title"}}New radio contact request{{end}}
{{define "body"}}
<p style="font-size:14px;color:#14171a;line-height:1.6;">A new radio contact request has arrived.</p>
{{template "details" .}}
<div style="background-color:#f4f7f9;border-radius:6px;padding:16px;margin:16px 0;">
<p style="font-size:14px;color:#14171a;margin:0;white-space:pre-line;">{{.Contact.Content}}</p>
</div>
<p style="font-size:14px;color:#14171a;line-height:1.6;">Requester: {{.Contact.ContactName}} / {{.Contact.Phone}} / {{.Contact.Email}}</p>
{{end}}`))

var intakeReceiptTmpl = template.Must(template.Must(template.New("intake_receipt").Parse(layoutHTML)).Parse(detailsHTML + `
{{define "title"}}We received your radio contact request{{end}}
{{define "body"}}
<p style="font-size:14px;color:#14171a;line-height:1.6;">Hello {{.Contact.ContactName}},</p>
<p style="font-size:14px;color:#14171a;line-height:1.6;">Thank you for your interest in the beach cleanup program. We received the request from <strong>{{.Contact.OrgName}}</strong> and will get back to you soon.</p>
{{template "details" .}}
{{end}}`))

// RenderAcceptance produces the acceptance email. Pure and deterministic.
func RenderAcceptance(p AcceptanceParams) (string, error) {
	return execute(acceptanceTmpl, p)
}

func RenderRejection(p RejectionParams) (string, error) {
	return execute(rejectionTmpl, p)
}

func RenderReschedule(p RescheduleParams) (string, error) {
	return execute(rescheduleTmpl, p)
}

func RenderIntakeNotice(p IntakeParams) (string, error) {
	return execute(intakeNoticeTmpl, p)
}

func RenderIntakeReceipt(p IntakeParams) (string, error) {
	return execute(intakeReceiptTmpl, p)
}

// Subject returns the subject line for a notification kind.
func Subject(kind Kind, orgName string) string {
	org := strings.TrimSpace(orgName)
	switch kind {
	case KindAcceptance:
		return fmt.Sprintf("[Lighthouse] Radio contact request accepted - %s", org)
	case KindRejection:
		return fmt.Sprintf("[Lighthouse] About your radio contact request - %s", org)
	case KindReschedule:
		return fmt.Sprintf("[Lighthouse] Radio contact rescheduled - %s", org)
	case KindIntakeNotice:
		return fmt.Sprintf("[Lighthouse] New radio contact request from %s", org)
	case KindIntakeReceipt:
		return "[Lighthouse] We received your radio contact request"
	}
	return "[Lighthouse] Notification"
}

func execute(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
