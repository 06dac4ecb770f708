package draft

import (
	"context"
	"encoding/json"

	"github.com/mfriesen/discovery/internal/domain"
)

// DefaultKey is the fixed storage key the wizard draft lives under.
// Last writer wins; concurrent sessions racing on the same store are an
// accepted hazard, not coordinated.
const DefaultKey = "discovery.session.draft"

// Keeper saves, restores and discards the wizard draft. All read-side
// failures (missing key, corrupt payload, broken store) collapse to
// "no draft": a visitor must never be stranded by persistence.
type Keeper struct {
	store Store
	key   string
}

func NewKeeper(store Store) *Keeper {
	return &Keeper{store: store, key: DefaultKey}
}

// Save overwrites the stored draft.
func (k *Keeper) Save(ctx context.Context, d domain.SessionDraft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return k.store.Set(ctx, k.key, data)
}

// Load returns the stored draft, or ok=false when there is none or it
// cannot be read back.
func (k *Keeper) Load(ctx context.Context) (domain.SessionDraft, bool) {
	data, ok, err := k.store.Get(ctx, k.key)
	if err != nil || !ok {
		return domain.SessionDraft{}, false
	}
	var d domain.SessionDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return domain.SessionDraft{}, false
	}
	return d, true
}

// Discard removes the stored draft.
func (k *Keeper) Discard(ctx context.Context) error {
	return k.store.Remove(ctx, k.key)
}

// Resumable reports whether a loaded draft should trigger the
// resume-or-restart prompt: the visitor left an email and stopped
// strictly between intake and confirmation.
func Resumable(d domain.SessionDraft) bool {
	if d.Contact.Email == "" {
		return false
	}
	r := d.Phase.Rank()
	return r > domain.PhaseIntake.Rank() && r < domain.PhaseConfirmation.Rank()
}
