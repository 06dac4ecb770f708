package domain

// Answer holds the recorded response for one question: a scalar for
// single-choice and text questions, an ordered value list for
// multi-choice questions.
type Answer struct {
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// AnswerSet maps question ids to answers. It grows incrementally as the
// user progresses; answers are overwritten, never invalidated, except
// that the wizard re-scopes the offering selection when the industry
// answer changes.
type AnswerSet map[string]Answer

// Set records a scalar answer for a single-choice or text question.
func (a AnswerSet) Set(id, value string) {
	ans := a[id]
	ans.Value = value
	a[id] = ans
}

// Toggle adds the value to a multi-choice answer if absent and removes it
// if present, preserving selection order. When max > 0 and the value is
// not yet selected, adding past the cap is a no-op.
func (a AnswerSet) Toggle(id, value string, max int) {
	ans := a[id]
	for i, v := range ans.Values {
		if v == value {
			ans.Values = append(ans.Values[:i], ans.Values[i+1:]...)
			a[id] = ans
			return
		}
	}
	if max > 0 && len(ans.Values) >= max {
		return
	}
	ans.Values = append(ans.Values, value)
	a[id] = ans
}

// Value returns the scalar answer for id, or "" if unanswered.
func (a AnswerSet) Value(id string) string {
	return a[id].Value
}

// Values returns the multi-choice answer for id in selection order.
func (a AnswerSet) Values(id string) []string {
	return a[id].Values
}

// HasValue reports whether value is among the multi-choice selections
// for id.
func (a AnswerSet) HasValue(id, value string) bool {
	for _, v := range a[id].Values {
		if v == value {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so reducer steps never alias the previous
// state's answer slices.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for id, ans := range a {
		cp := Answer{Value: ans.Value}
		if len(ans.Values) > 0 {
			cp.Values = append([]string(nil), ans.Values...)
		}
		out[id] = cp
	}
	return out
}
