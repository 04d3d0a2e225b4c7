package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	edit     key.Binding
	delete   key.Binding
	accounts key.Binding
	sort     key.Binding
	refresh  key.Binding
	copy     key.Binding
	help     key.Binding
	info     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel/close")),
	tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
	accounts: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accounts")),
	sort:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
	refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy national ID")),
	help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	info:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "build info")),
	yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	no:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
}

// clientHelp feeds help.Model on the client screen.
type clientHelp struct{}

func (clientHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.tab, keys.enter, keys.edit, keys.delete, keys.accounts, keys.help, keys.quit}
}

func (clientHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.tab, keys.backtab},
		{keys.enter, keys.edit, keys.esc, keys.delete},
		{keys.accounts, keys.sort, keys.refresh, keys.copy},
		{keys.info, keys.help, keys.quit},
	}
}

// accountHelp feeds help.Model inside the accounts modal.
type accountHelp struct{}

func (accountHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.tab, keys.enter, keys.edit, keys.delete, keys.refresh, keys.esc}
}

func (accountHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.tab},
		{keys.enter, keys.edit, keys.delete},
		{keys.refresh, keys.esc, keys.quit},
	}
}
