package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/alkime/fastgenius/internal/export"
	"github.com/alkime/fastgenius/internal/generation"
	"github.com/alkime/fastgenius/internal/templates"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Client-facing error messages.
const (
	errTopicRequired   = "Topic is required"
	errInvalidTemplate = "Invalid template"
	errNoContent       = "No content to export"
	errInvalidBody     = "Invalid request body"
	errGenerateFailed  = "An error occurred while generating content"
	errExportFailed    = "An error occurred while exporting content"
)

// optionalString is a JSON string field that remembers whether its key was sent.
// A null value counts as sent and decodes to the empty string.
type optionalString struct {
	Value string
	Set   bool
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = ""
		return nil
	}

	return json.Unmarshal(data, &o.Value)
}

// Or returns the sent value, or fallback when the key was absent.
func (o optionalString) Or(fallback string) string {
	if !o.Set {
		return fallback
	}

	return o.Value
}

type generateRequest struct {
	Template    optionalString `json:"template"`
	Topic       string         `json:"topic" binding:"required"`
	Tone        optionalString `json:"tone"`
	Length      optionalString `json:"length"`
	Language    optionalString `json:"language"`
	ContentType optionalString `json:"content_type"`
}

// params resolves the template placeholders. Only absent keys get defaults;
// an empty string is substituted as is.
func (r generateRequest) params() templates.Params {
	return templates.Params{
		ContentType: r.ContentType.Or(templates.DefaultContentType),
		Topic:       r.Topic,
		Tone:        r.Tone.Or(templates.DefaultTone),
		Length:      r.Length.Or(templates.DefaultLength),
		Language:    r.Language.Or(templates.DefaultLanguage),
	}
}

type exportRequest struct {
	Title   optionalString `json:"title"`
	Content string         `json:"content" binding:"required"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type generateResponse struct {
	Success bool              `json:"success"`
	Result  generation.Result `json:"result"`
}

type templatesResponse struct {
	Templates map[string]templates.Info `json:"templates"`
}

// handleTemplates lists the registered templates without their prompts.
func (s *Server) handleTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, templatesResponse{Templates: s.templates.List()})
}

// handleGenerate renders the chosen template and runs it through the generator.
// Upstream failures still produce a 200 with the error sentinel as the result.
// The upstream call is not canceled when the client disconnects.
func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, bindingMessage(err, errTopicRequired), err)
		return
	}

	// An explicit "" or null must still name a registered template.
	templateID := req.Template.Or(templates.DefaultID)
	tmpl, err := s.templates.Get(templateID)
	if err != nil {
		s.badRequest(c, errInvalidTemplate, err)
		return
	}

	prompt := tmpl.Render(req.params())
	outcome := s.generator.Generate(context.WithoutCancel(c.Request.Context()), prompt)

	s.logger.Info("Content generated",
		"template", templateID,
		"status", outcome.Status.String(),
	)

	c.JSON(http.StatusOK, generateResponse{
		Success: true,
		Result:  outcome.Result,
	})
}

// handleExport returns the content as a plain-text attachment.
func (s *Server) handleExport(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, bindingMessage(err, errNoContent), err)
		return
	}

	doc, err := export.Build(req.Title.Or(export.DefaultTitle), req.Content)
	if errors.Is(err, export.ErrEmptyContent) {
		s.badRequest(c, errNoContent, err)
		return
	}
	if err != nil {
		s.logger.Error("Export endpoint error", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Success: false, Error: errExportFailed})
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, export.MediaType, doc.Body)
}

func (s *Server) badRequest(c *gin.Context, message string, err error) {
	s.logger.Debug("Rejected request", "path", c.FullPath(), "reason", message, "error", err)
	c.JSON(http.StatusBadRequest, errorResponse{Success: false, Error: message})
}

// bindingMessage maps a failed required-field check to message and anything
// else (malformed JSON, wrong field types) to a generic body error.
func bindingMessage(err error, message string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return message
	}

	return errInvalidBody
}
