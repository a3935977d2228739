package gemini

import (
	"google.golang.org/genai"

	"github.com/idilsaglam/roadmap/internal/model"
)

func str() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }

func strList() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: str()}
}

func enum[T ~string](values []T) *genai.Schema {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return &genai.Schema{Type: genai.TypeString, Enum: out}
}

// RoadmapSchema is the structured-output contract sent with every request.
func RoadmapSchema() *genai.Schema {
	resource := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": str(),
			"type":  enum(model.ResourceTypes),
			"url":   str(),
		},
	}
	step := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":          str(),
			"title":       str(),
			"duration":    str(),
			"description": str(),
			"topics":      strList(),
			"aiStrategy":  str(),
			"resources":   {Type: genai.TypeArray, Items: resource},
		},
	}
	phase := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       str(),
			"description": str(),
			"steps":       {Type: genai.TypeArray, Items: step},
		},
	}
	topic := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":       str(),
			"importance": enum(model.Importances),
			"subtopics":  strList(),
		},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"goal":                   str(),
			"overview":               str(),
			"estimatedTotalDuration": str(),
			"syllabus":               {Type: genai.TypeArray, Items: topic},
			"phases":                 {Type: genai.TypeArray, Items: phase},
		},
		Required: append([]string(nil), model.RequiredFields...),
	}
}
