package view

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/osteele/liquid"
)

const (
	titleTemplate     = `{{ brand }} Campaign Analytics`
	subtitleTemplate  = `{{ start | default: "N/A" }} to {{ end | default: "N/A" }} ({{ days }} days) • {{ active | number_with_delimiter }} active campaigns`
	dateLabelTemplate = `{% if label != "" %}{{ label }}{% else %}Last {{ days }} days{% endif %}`
)

// headerTemplates holds the parsed liquid templates for the dashboard header
type headerTemplates struct {
	title     *liquid.Template
	subtitle  *liquid.Template
	dateLabel *liquid.Template
}

var header = mustParseHeader()

func newEngine() *liquid.Engine {
	engine := liquid.NewEngine()

	// Default value filter: {{ start | default: "N/A" }}
	engine.RegisterFilter("default", func(value interface{}, defaultVal string) interface{} {
		if value == nil {
			return defaultVal
		}
		strVal := fmt.Sprintf("%v", value)
		if strVal == "" || strVal == "<nil>" {
			return defaultVal
		}
		return value
	})

	// Number with commas: {{ active | number_with_delimiter }}
	engine.RegisterFilter("number_with_delimiter", func(value interface{}) string {
		switch v := value.(type) {
		case int:
			return humanize.Comma(int64(v))
		case int64:
			return humanize.Comma(v)
		case float64:
			return humanize.Comma(int64(v))
		default:
			return fmt.Sprintf("%v", value)
		}
	})

	return engine
}

func mustParseHeader() headerTemplates {
	engine := newEngine()
	parse := func(src string) *liquid.Template {
		tpl, err := engine.ParseString(src)
		if err != nil {
			panic(fmt.Sprintf("view: parsing header template %q: %v", src, err))
		}
		return tpl
	}
	return headerTemplates{
		title:     parse(titleTemplate),
		subtitle:  parse(subtitleTemplate),
		dateLabel: parse(dateLabelTemplate),
	}
}

// render executes tpl, falling back to fallback if rendering fails.
func render(tpl *liquid.Template, bindings map[string]interface{}, fallback string) string {
	out, err := tpl.RenderString(bindings)
	if err != nil {
		log.Printf("[View] Render error: %v", err)
		return fallback
	}
	return out
}
