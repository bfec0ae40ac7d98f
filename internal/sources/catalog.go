package sources

import "github.com/serendipious/solGPT/internal/model"

// BuiltinCatalog is the static configuration-action tier of the catalog.
// Items are value objects; the engine interprets their actions.
func BuiltinCatalog(home string) []model.Item {
	return []model.Item{
		{
			Icon:         "⏰",
			Name:         "Track time",
			Kind:         model.KindConfiguration,
			PreventClose: true,
			Action:       model.FocusWidget{Widget: model.WidgetProjectSelect},
		},
		{
			Icon:         "✋",
			Name:         "Stop Tracking Time",
			Kind:         model.KindConfiguration,
			PreventClose: true,
			Action:       model.StopTracking{},
		},
		{
			Icon:         "➕",
			Name:         "Create Tracking Project",
			Kind:         model.KindConfiguration,
			PreventClose: true,
			Action:       model.FocusWidget{Widget: model.WidgetProjectCreation},
		},
		{
			Icon:   "🌓",
			Name:   "Toggle OS theme",
			Alias:  "dark",
			Kind:   model.KindConfiguration,
			Action: model.RunScript{Script: "toggle-theme"},
		},
		{
			Icon:         "⚙️",
			Name:         "Settings",
			Kind:         model.KindConfiguration,
			PreventClose: true,
			Action:       model.FocusWidget{Widget: model.WidgetSettings},
		},
		{
			Icon:         "✳️",
			Name:         "Create shortcut",
			Kind:         model.KindConfiguration,
			PreventClose: true,
			Action:       model.FocusWidget{Widget: model.WidgetShortcuts},
		},
		{
			Icon:         "🖊",
			Name:         "Scratchpad",
			Kind:         model.KindConfiguration,
			PreventClose: true,
			Shortcut:     "⌘ ⇧ Space",
			Action:       model.FocusWidget{Widget: model.WidgetScratchpad},
		},
		{
			Icon:         "😎",
			Name:         "Emoji Picker",
			Kind:         model.KindConfiguration,
			PreventClose: true,
			Shortcut:     "⌘ ^ Space",
			Action:       model.FocusWidget{Widget: model.WidgetEmojis},
		},
		{
			Icon:         "📋",
			Name:         "Clipboard Manager",
			Kind:         model.KindConfiguration,
			PreventClose: true,
			Action:       model.FocusWidget{Widget: model.WidgetClipboard},
		},
		{
			Icon:   "📁",
			Name:   "Downloads",
			Kind:   model.KindConfiguration,
			Action: model.OpenPath{Path: home + "/Downloads"},
		},
		{
			Icon:   "📁",
			Name:   "Documents",
			Kind:   model.KindConfiguration,
			Action: model.OpenPath{Path: home + "/Documents"},
		},
		{
			Icon:   "📁",
			Name:   "Developer",
			Kind:   model.KindConfiguration,
			Action: model.OpenPath{Path: home + "/Developer"},
		},
		{
			Icon:   "💀",
			Name:   "Quit Sol",
			Kind:   model.KindConfiguration,
			Action: model.Quit{},
		},
	}
}

// FallbackItems is the fixed always-appended tier: constant order, never
// filtered by match score.
func FallbackItems() []model.Item {
	return []model.Item{
		{
			Name:     "Google Search",
			Kind:     model.KindConfiguration,
			Shortcut: "⌘ 1",
			Action:   model.WebSearch{},
		},
		{
			Name:         "Google Translate",
			Kind:         model.KindConfiguration,
			Shortcut:     "⌘ 2",
			PreventClose: true,
			Action:       model.TranslateQuery{},
		},
		{
			Name:         "Google Maps",
			Kind:         model.KindConfiguration,
			Shortcut:     "⌘ 3",
			PreventClose: true,
			Action:       model.FocusWidget{Widget: model.WidgetMap},
		},
	}
}
