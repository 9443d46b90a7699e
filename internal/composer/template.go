package composer

import (
	"fmt"
	"strings"

	"github.com/jonathan/interview-mailer/internal/extraction"
	"github.com/jonathan/interview-mailer/internal/prompts"
)

const promptFile = "email.json"

// Template keys in the prompt file, in body order
const (
	keySubject          = "subject"
	keySalutation       = "salutation"
	keyOpening          = "opening"
	keyCompanyParagraph = "company-paragraph"
	keyActionParagraph  = "action-paragraph"
	keyClosingParagraph = "closing-paragraph"
	keySignOff          = "sign-off"
)

// templates holds the loaded email fragments. It is read-only after load.
type templates struct {
	subject          string
	salutation       string
	opening          string
	companyParagraph string
	actionParagraph  string
	closingParagraph string
	signOff          string
}

func loadTemplates() (*templates, error) {
	t := &templates{}
	fragments := []struct {
		key  string
		dest *string
	}{
		{keySubject, &t.subject},
		{keySalutation, &t.salutation},
		{keyOpening, &t.opening},
		{keyCompanyParagraph, &t.companyParagraph},
		{keyActionParagraph, &t.actionParagraph},
		{keyClosingParagraph, &t.closingParagraph},
		{keySignOff, &t.signOff},
	}
	for _, f := range fragments {
		value, err := prompts.Get(promptFile, f.key)
		if err != nil {
			return nil, fmt.Errorf("failed to load email template: %w", err)
		}
		*f.dest = value
	}
	return t, nil
}

func templateData(fields extraction.Fields) map[string]string {
	return map[string]string{
		"CompanyName":   fields.CompanyName,
		"JobPosition":   fields.JobPosition,
		"JobType":       fields.JobType,
		"WorkplaceType": fields.WorkplaceType,
		"JobLocation":   fields.JobLocation,
		"CandidateName": fields.CandidateName,
	}
}

// Subject renders the subject line.
func (t *templates) Subject(fields extraction.Fields) string {
	return prompts.Format(t.subject, templateData(fields))
}

// Body renders the unpolished body with the highlight sentence inserted after the opening line.
func (t *templates) Body(fields extraction.Fields, highlight string) string {
	data := templateData(fields)

	var b strings.Builder
	b.WriteString(prompts.Format(t.salutation, data))
	b.WriteString(prompts.Format(t.opening, data))
	b.WriteString(highlight)
	b.WriteString("\n\n")
	b.WriteString(prompts.Format(t.companyParagraph, data))
	b.WriteString("\n\n")
	b.WriteString(t.actionParagraph)
	b.WriteString(t.closingParagraph)
	b.WriteString(prompts.Format(t.signOff, data))
	return b.String()
}
