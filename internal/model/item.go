package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidKind = errors.New("model: invalid item kind")

type ItemKind string

const (
	KindApplication   ItemKind = "application"
	KindConfiguration ItemKind = "configuration"
	KindCustom        ItemKind = "custom"
	KindTemporary     ItemKind = "temporary"
	KindBookmark      ItemKind = "bookmark"
)

func (k ItemKind) IsValid() bool {
	switch k {
	case KindApplication, KindConfiguration, KindCustom, KindTemporary, KindBookmark:
		return true
	default:
		return false
	}
}

// Widget identifies the surface that currently owns the query.
type Widget string

const (
	WidgetSearch          Widget = "search"
	WidgetCalendar        Widget = "calendar"
	WidgetProjectSelect   Widget = "project_select"
	WidgetProjectCreation Widget = "project_creation"
	WidgetTranslation     Widget = "translation"
	WidgetSettings        Widget = "settings"
	WidgetShortcuts       Widget = "shortcuts"
	WidgetScratchpad      Widget = "scratchpad"
	WidgetEmojis          Widget = "emojis"
	WidgetClipboard       Widget = "clipboard"
	WidgetMap             Widget = "map"
)

// Action is what happens when an item is activated. The engine interprets
// each concrete action; items never carry callbacks.
type Action interface {
	isAction()
}

type OpenURL struct{ URL string }

type OpenPath struct{ Path string }

type FocusWidget struct{ Widget Widget }

type WebSearch struct{}

type TranslateQuery struct{}

type RunScript struct{ Script string }

type StartTracking struct{ ProjectID string }

type StopTracking struct{}

type Quit struct{}

func (OpenURL) isAction()        {}
func (OpenPath) isAction()       {}
func (FocusWidget) isAction()    {}
func (WebSearch) isAction()      {}
func (TranslateQuery) isAction() {}
func (RunScript) isAction()      {}
func (StartTracking) isAction()  {}
func (StopTracking) isAction()   {}
func (Quit) isAction()           {}

// Item is a single displayable, actionable palette entry. Items are value
// objects rebuilt on every query; the name doubles as the identity key used
// for frequencies and favorites. Duplicate names are allowed and collide on
// purpose so favorites resolve against the combined catalog.
type Item struct {
	Name         string
	Subtitle     string
	Kind         ItemKind
	Icon         string
	Shortcut     string
	Alias        string
	Path         string
	PreventClose bool
	Action       Action
	Secondary    Action
}

// Key is the identity used by the frequency store and favorites list.
func (it Item) Key() string { return it.Name }

func (it Item) Validate() error {
	if strings.TrimSpace(it.Name) == "" && it.Kind != KindTemporary {
		return errors.New("model: item name is required")
	}
	if !it.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, it.Kind)
	}
	return nil
}

// CustomItem is a user-defined shortcut as persisted. It expands to a
// KindCustom Item whose action opens a URL or runs a script.
type CustomItem struct {
	Name     string
	Icon     string
	Text     string
	IsScript bool
}

func (c CustomItem) Item() Item {
	var action Action
	if c.IsScript {
		action = RunScript{Script: c.Text}
	} else {
		action = OpenURL{URL: c.Text}
	}
	return Item{
		Name:   c.Name,
		Kind:   KindCustom,
		Icon:   c.Icon,
		Action: action,
	}
}
