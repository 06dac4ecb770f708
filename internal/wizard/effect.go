package wizard

// Effect is a side effect the caller must execute after a reduction.
// The reducer itself stays pure: it only announces what should happen.
type Effect int

const (
	// EffectSaveDraft snapshots the state to the draft store.
	EffectSaveDraft Effect = iota
	// EffectDiscardDraft removes the stored draft.
	EffectDiscardDraft
	// EffectAnalyze invokes the gateway's analysis operation.
	EffectAnalyze
	// EffectSubmit invokes the gateway's submission operation.
	EffectSubmit
)

func (e Effect) String() string {
	switch e {
	case EffectSaveDraft:
		return "save_draft"
	case EffectDiscardDraft:
		return "discard_draft"
	case EffectAnalyze:
		return "analyze"
	case EffectSubmit:
		return "submit"
	}
	return "unknown"
}
