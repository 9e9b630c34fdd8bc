package control

// Classifier decides whether a recognized object is a survivor. The state
// machine never inspects objects itself, so alternate detection strategies
// can be substituted without touching it.
type Classifier interface {
	IsSurvivor(obj RecognizedObject) bool
}

// NameClassifier matches objects whose resolved name equals Label exactly.
// An object with an empty (unresolved) name never matches; there is no
// partial or case-insensitive matching.
type NameClassifier struct {
	Label string
}

// IsSurvivor reports whether the object's name equals the label.
func (c NameClassifier) IsSurvivor(obj RecognizedObject) bool {
	return obj.Name != "" && obj.Name == c.Label
}

// LabelClassifier matches any of several names, optionally falling back to
// the object's model name. Useful when survivor props come from more than
// one proto.
type LabelClassifier struct {
	Labels []string
	Models []string
}

// IsSurvivor reports whether the object matches any configured name or model.
func (c LabelClassifier) IsSurvivor(obj RecognizedObject) bool {
	for _, label := range c.Labels {
		if obj.Name != "" && obj.Name == label {
			return true
		}
	}
	for _, model := range c.Models {
		if obj.Model != "" && obj.Model == model {
			return true
		}
	}
	return false
}
