package theme

import "sort"

// Placeholders for the starter template. They fit the default palette layout
// of 7 token bases and 7 workbench bases with 60 gradations each.
const (
	roleBackground = "C_08_02"
	roleSurface    = "C_09_06"
	roleSelection  = "C_10_14"
	roleMuted      = "C_08_35"
	roleForeground = "C_08_55"
	roleBright     = "C_08_59"
	roleAccent     = "C_01_45"
	roleKeyword    = "C_02_45"
	roleString     = "C_03_45"
	roleFunction   = "C_04_45"
	roleType       = "C_05_45"
	roleConstant   = "C_06_45"
	roleVariable   = "C_07_50"
	roleComment    = "C_09_35"
	roleError      = "#c04040"
	roleWarning    = "#c0a040"
)

var starterColors = map[string][]string{
	roleBackground: {
		"editor.background", "activityBar.background", "sideBar.background",
		"statusBar.background", "statusBar.noFolderBackground", "tab.activeBackground",
		"editorGroupHeader.noTabsBackground", "titleBar.activeBackground",
		"titleBar.inactiveBackground", "panel.background", "terminal.background",
		"tab.border", "terminal.ansiBlack",
	},
	roleSurface: {
		"editor.lineHighlightBackground", "editor.inactiveSelectionBackground",
		"editorIndentGuide.background", "activityBar.activeBackground", "sideBar.border",
		"sideBarSectionHeader.background", "list.inactiveSelectionBackground",
		"list.hoverBackground", "statusBar.border", "statusBar.debuggingBackground",
		"tab.inactiveBackground", "editorGroupHeader.tabsBackground", "titleBar.border",
		"input.background", "dropdown.background", "panel.border", "editorWidget.background",
		"editorSuggestWidget.background", "peekViewEditor.background",
		"peekViewResult.background", "peekViewTitle.background", "notifications.background",
		"menu.background", "debugToolBar.background",
	},
	roleSelection: {
		"editor.selectionBackground", "editorBracketMatch.background",
		"list.activeSelectionBackground", "list.focusBackground", "input.border",
		"dropdown.border", "editorWidget.border", "editorSuggestWidget.border",
		"editorSuggestWidget.selectedBackground", "notifications.border",
		"menubar.selectionBackground", "menu.selectionBackground",
		"scrollbarSlider.background",
	},
	roleMuted: {
		"editorLineNumber.foreground", "editorIndentGuide.activeBackground",
		"tab.inactiveForeground", "tab.unfocusedActiveBorder", "titleBar.inactiveForeground",
		"input.placeholderForeground", "panelTitle.inactiveForeground",
		"breadcrumb.foreground", "scrollbarSlider.hoverBackground",
		"scrollbarSlider.activeBackground", "editorWhitespace.foreground",
	},
	roleForeground: {
		"editor.foreground", "activityBar.foreground", "sideBar.foreground",
		"sideBarTitle.foreground", "sideBarSectionHeader.foreground",
		"list.activeSelectionForeground", "statusBar.foreground", "tab.activeForeground",
		"titleBar.activeForeground", "input.foreground", "dropdown.foreground",
		"panelTitle.activeForeground", "terminal.foreground", "breadcrumb.focusForeground",
		"menu.foreground", "menu.selectionForeground", "terminal.ansiWhite",
	},
	roleBright: {
		"editorLineNumber.activeForeground", "terminal.ansiBrightWhite",
	},
	roleAccent: {
		"editorCursor.foreground", "editorBracketMatch.border", "activityBar.activeBorder",
		"activityBarBadge.background", "list.highlightForeground", "tab.activeBorder",
		"inputOption.activeBorder", "button.background", "focusBorder",
		"panelTitle.activeBorder", "editorSuggestWidget.highlightForeground",
		"peekView.border", "breadcrumb.activeSelectionForeground", "editorInfo.foreground",
		"terminal.ansiBlue",
	},
	roleKeyword: {
		"terminal.ansiMagenta", "gitDecoration.conflictingResourceForeground",
	},
	roleString: {
		"terminal.ansiGreen", "gitDecoration.untrackedResourceForeground",
		"editorGutter.addedBackground",
	},
	roleFunction: {
		"terminal.ansiCyan", "badge.background", "gitDecoration.modifiedResourceForeground",
		"editorGutter.modifiedBackground",
	},
	roleType: {
		"terminal.ansiYellow", "terminal.ansiBrightYellow",
	},
	roleConstant: {
		"terminal.ansiBrightBlue", "terminal.ansiBrightCyan",
	},
	roleVariable: {
		"terminal.ansiBrightGreen", "terminal.ansiBrightMagenta",
	},
	roleComment: {
		"terminal.ansiBrightBlack", "gitDecoration.ignoredResourceForeground",
	},
	roleError: {
		"editorError.foreground", "terminal.ansiRed", "terminal.ansiBrightRed",
		"gitDecoration.deletedResourceForeground", "editorGutter.deletedBackground",
		"inputValidation.errorBorder",
	},
	roleWarning: {
		"editorWarning.foreground",
	},
}

var starterTokens = []TokenColor{
	{Scope: NewScope("comment", "punctuation.definition.comment"), Settings: TokenSetting{Foreground: roleComment, FontStyle: "italic"}},
	{Scope: NewScope("keyword", "storage.type", "storage.modifier"), Settings: TokenSetting{Foreground: roleKeyword}},
	{Scope: NewScope("variable", "meta.object-literal.key"), Settings: TokenSetting{Foreground: roleVariable}},
	{Scope: NewScope("string", "constant.other.symbol"), Settings: TokenSetting{Foreground: roleString}},
	{Scope: NewScope("constant.numeric", "constant.language", "constant.character"), Settings: TokenSetting{Foreground: roleConstant}},
	{Scope: NewScope("entity.name.type", "support.type", "entity.name.class"), Settings: TokenSetting{Foreground: roleType}},
	{Scope: NewScope("entity.name.function", "support.function"), Settings: TokenSetting{Foreground: roleFunction}},
	{Scope: NewScope("support.class", "support.variable", "variable.language"), Settings: TokenSetting{Foreground: roleAccent}},
	{Scope: NewScope("invalid"), Settings: TokenSetting{Foreground: roleError}},
	{Scope: NewScope("markup.heading"), Settings: TokenSetting{Foreground: roleFunction, FontStyle: "bold"}},
	{Scope: NewScope("markup.bold"), Settings: TokenSetting{Foreground: roleType, FontStyle: "bold"}},
	{Scope: NewScope("markup.italic"), Settings: TokenSetting{Foreground: roleKeyword, FontStyle: "italic"}},
	{Scope: NewScope("markup.quote"), Settings: TokenSetting{Foreground: roleComment}},
	{Scope: NewScope("markup.raw", "markup.inline.raw"), Settings: TokenSetting{Foreground: roleString}},
}

// Starter builds the template written by `viiv init`.
func Starter() *Document {
	d := NewDocument()
	_ = d.Set("$schema", "vscode://schemas/color-theme")
	d.SetName("viiv")
	d.SetType("dark")

	var properties []string
	value := map[string]string{}
	for role, names := range starterColors {
		for _, name := range names {
			properties = append(properties, name)
			value[name] = role
		}
	}
	sort.Strings(properties)
	for _, name := range properties {
		d.Colors.Set(name, value[name])
	}

	d.TokenColors = make([]TokenColor, len(starterTokens))
	for i, tc := range starterTokens {
		tc.Scope.Values = append([]string(nil), tc.Scope.Values...)
		d.TokenColors[i] = tc
	}
	_ = d.Set("semanticHighlighting", true)
	return d
}
