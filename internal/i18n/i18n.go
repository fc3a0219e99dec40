package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

type Language string

const (
	EN Language = "en"
	ZH Language = "zh"
)

// Languages lists every supported language in toggle order.
var Languages = []Language{EN, ZH}

func (l Language) Valid() bool {
	_, ok := tables[l]
	return ok
}

// AcceptLanguage is the header value the backend expects for l.
func (l Language) AcceptLanguage() string { return string(l) }

var matcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// ParseLanguage maps a BCP 47 tag or Accept-Language list onto a supported
// language. Anything unrecognised is English.
func ParseLanguage(s string) Language {
	if l := Language(s); l.Valid() {
		return l
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return EN
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return EN
	}
	if idx == 1 {
		return ZH
	}
	return EN
}

// Translator holds the active language and notifies subscribers when it
// changes. It is safe for concurrent use.
type Translator struct {
	mu     sync.RWMutex
	lang   Language
	nextID int
	subs   map[int]func(Language)
}

// New returns a translator initialised to lang, or English when lang is unknown.
func New(lang Language) *Translator {
	if !lang.Valid() {
		lang = EN
	}
	return &Translator{lang: lang, subs: make(map[int]func(Language))}
}

func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// T returns the string for key in the active language.
func (t *Translator) T(key Key) string {
	if key < 0 || key >= keyCount {
		return fmt.Sprintf("!key(%d)", int(key))
	}
	t.mu.RLock()
	table := tables[t.lang]
	t.mu.RUnlock()
	return table[key]
}

// Tf formats the translated string with args.
func (t *Translator) Tf(key Key, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// SetLanguage switches language and notifies subscribers if it changed.
// Unknown languages are ignored.
func (t *Translator) SetLanguage(lang Language) {
	if !lang.Valid() {
		return
	}
	t.mu.Lock()
	if t.lang == lang {
		t.mu.Unlock()
		return
	}
	t.lang = lang
	subs := t.snapshot()
	t.mu.Unlock()

	for _, fn := range subs {
		fn(lang)
	}
}

// Toggle flips between English and Chinese and returns the new language.
func (t *Translator) Toggle() Language {
	next := ZH
	if t.Language() == ZH {
		next = EN
	}
	t.SetLanguage(next)
	return next
}

// Subscribe registers fn to run synchronously after every language change.
// The returned func removes the subscription.
func (t *Translator) Subscribe(fn func(Language)) func() {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// snapshot must be called with mu held.
func (t *Translator) snapshot() []func(Language) {
	out := make([]func(Language), 0, len(t.subs))
	for id := 0; id < t.nextID; id++ {
		if fn, ok := t.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
