package tracker

import "github.com/claude/fittrack/internal/models"

// Settings returns the current user preferences.
func (t *Tracker) Settings() models.Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settings
}

// SetTheme updates the theme preference, persists it, and notifies
// subscribers.
func (t *Tracker) SetTheme(theme models.Theme) models.Settings {
	t.mu.Lock()
	t.settings.Theme = theme
	s := t.settings
	subs := make([]func(models.Settings), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	if err := t.db.SaveSettings(s); err != nil {
		t.log.Error("persisting settings", "error", err)
	}
	for _, fn := range subs {
		fn(s)
	}
	return s
}

// SubscribeSettings registers fn to run after every settings change. The
// returned function removes the subscription; callers tie it to their
// lifecycle instead of listening globally.
func (t *Tracker) SubscribeSettings(fn func(models.Settings)) func() {
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}
