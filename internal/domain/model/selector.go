package model

import (
	"regexp"
	"sort"
	"strings"

	"model-gateway/services/gemini-adapter/internal/utils/functional"
	"model-gateway/services/gemini-adapter/internal/utils/httpclients/gemini"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	modelNamePrefix       = "models/"
	generateContentMethod = "generateContent"
	previewMarker         = "-preview"
)

// acceptedVersionTokens gates discovery on model generations this adapter
// knows how to drive.
var acceptedVersionTokens = []string{"2.5", "3.", "4.", "5."}

// dateStampSuffix matches trailing date stamps such as "-03-25".
var dateStampSuffix = regexp.MustCompile(`-\d{2}-\d{2}$`)

// SelectModels reduces the raw Gemini listing to one representative per model
// family. Group order and member order follow first appearance in the input.
func SelectModels(records []gemini.ModelRecord) []Model {
	candidates := functional.Filter(records, isCandidate)
	models := functional.Map(candidates, toModel)

	groups := orderedmap.New[string, []Model]()
	for _, m := range models {
		family := baseFamilyName(m.ID)
		members, _ := groups.Get(family)
		groups.Set(family, append(members, m))
	}

	selected := make([]Model, 0, groups.Len())
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		members := pair.Value
		sort.SliceStable(members, func(i, j int) bool {
			iStable := !strings.Contains(members[i].ID, "preview")
			jStable := !strings.Contains(members[j].ID, "preview")
			if iStable != jStable {
				return iStable
			}
			return members[i].ID < members[j].ID
		})
		selected = append(selected, members[0])
	}
	return selected
}

func isCandidate(record gemini.ModelRecord) bool {
	if !strings.HasPrefix(record.Name, modelNamePrefix) {
		return false
	}
	if !supportsGenerateContent(record.SupportedGenerationMethods) {
		return false
	}
	if strings.Contains(strings.ToLower(record.Name), "tts") {
		return false
	}
	return functional.Any(acceptedVersionTokens, func(token string) bool {
		return strings.Contains(record.Name, token)
	})
}

func supportsGenerateContent(methods []string) bool {
	return functional.Any(methods, func(method string) bool {
		return method == generateContentMethod
	})
}

func toModel(record gemini.ModelRecord) Model {
	id := strings.TrimPrefix(record.Name, modelNamePrefix)

	displayName := record.DisplayName
	if displayName == "" {
		displayName = id
	}

	maxInput := record.InputTokenLimit
	if maxInput <= 0 {
		maxInput = DefaultMaxInputTokens
	}
	maxOutput := record.OutputTokenLimit
	if maxOutput <= 0 {
		maxOutput = DefaultMaxOutputTokens
	}

	return Model{
		ID:              id,
		DisplayName:     displayName,
		MaxInputTokens:  maxInput,
		MaxOutputTokens: maxOutput,
		IsDefault:       id == DefaultModelID,
	}
}

// baseFamilyName strips preview and date stamp suffixes from a model id.
// A trailing "-lite" is kept, it names a distinct family.
func baseFamilyName(id string) string {
	if idx := strings.Index(id, previewMarker); idx >= 0 {
		id = id[:idx]
	}
	return dateStampSuffix.ReplaceAllString(id, "")
}
