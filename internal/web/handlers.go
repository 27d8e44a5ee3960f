package web

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/rpgo/fedcalc/internal/form"
	"github.com/rpgo/fedcalc/internal/output"
	"github.com/rpgo/fedcalc/internal/recorder"
)

type calculatorInfo struct {
	Kind  domain.Kind `json:"kind"`
	Title string      `json:"title"`
	Page  string      `json:"page"`
	API   string      `json:"api"`
}

func calculators() []calculatorInfo {
	out := make([]calculatorInfo, 0, len(domain.Kinds))
	for _, k := range domain.Kinds {
		out = append(out, calculatorInfo{
			Kind:  k,
			Title: k.Title(),
			Page:  "/calculators/" + string(k),
			API:   "/api/v1/calculators/" + string(k),
		})
	}
	return out
}

// kindParam resolves the :kind path parameter, writing a 404 when it is unknown.
func kindParam(c *gin.Context, html bool) (domain.Kind, bool) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err == nil {
		return kind, true
	}
	if html {
		c.String(http.StatusNotFound, "%s", err.Error())
	} else {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	}
	return "", false
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Calculators": calculators(),
	})
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) calculatorPage(c *gin.Context) {
	kind, ok := kindParam(c, true)
	if !ok {
		return
	}
	report, err := s.Engine.Calculate(kind, nil)
	if err != nil {
		c.String(http.StatusInternalServerError, "%s", err.Error())
		return
	}
	s.renderCalculator(c, kind, report)
}

func (s *Server) renderCalculator(c *gin.Context, kind domain.Kind, report *domain.Report) {
	result, err := renderResult(report)
	if err != nil {
		c.String(http.StatusInternalServerError, "%s", err.Error())
		return
	}
	c.HTML(http.StatusOK, "calculator.html", gin.H{
		"Kind":        kind,
		"Title":       kind.Title(),
		"Calculators": calculators(),
		"Fields":      form.Fields(reportInput(report)),
		"Result":      result,
	})
}

// calculateForm recomputes from a submitted form. HTMX requests get the
// result fragment only; plain form posts get the whole page back.
func (s *Server) calculateForm(c *gin.Context) {
	kind, ok := kindParam(c, true)
	if !ok {
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	started := time.Now()
	report, err := s.Engine.Calculate(kind, form.Bind(form.Values(c.Request.PostForm)))
	if err != nil {
		c.String(http.StatusBadRequest, "%s", err.Error())
		return
	}
	s.record(c.Request.Context(), report, recorder.SourceForm, started)

	if c.GetHeader("HX-Request") == "" {
		s.renderCalculator(c, kind, report)
		return
	}
	result, err := renderResult(report)
	if err != nil {
		c.String(http.StatusInternalServerError, "%s", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(result))
}

func (s *Server) listCalculators(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"calculators": calculators()})
}

func (s *Server) defaults(c *gin.Context) {
	kind, ok := kindParam(c, false)
	if !ok {
		return
	}
	in, err := calculation.DefaultInput(kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, in)
}

// calculateJSON overlays the request body on the default input, so omitted
// fields keep their defaults. An empty body, chunked or not, is no overlay.
func (s *Server) calculateJSON(c *gin.Context) {
	kind, ok := kindParam(c, false)
	if !ok {
		return
	}

	started := time.Now()
	report, err := s.Engine.Calculate(kind, func(target any) error {
		if err := c.ShouldBindJSON(target); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrUnknownCalculator) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	s.record(c.Request.Context(), report, recorder.SourceAPI, started)
	c.JSON(http.StatusOK, report)
}

func renderResult(r *domain.Report) (template.HTML, error) {
	var buf bytes.Buffer
	if err := output.RenderResult(&buf, r); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func reportInput(r *domain.Report) any {
	switch {
	case r.TSPInput != nil:
		return r.TSPInput
	case r.RothTraditionalInput != nil:
		return r.RothTraditionalInput
	case r.FERSInput != nil:
		return r.FERSInput
	}
	return nil
}
