/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nakachan-ing/nihref/internal/model"
	"github.com/nakachan-ing/nihref/internal/refs"
	"github.com/nakachan-ing/nihref/internal/store"
	"github.com/nakachan-ing/nihref/internal/style"
	"github.com/spf13/cobra"
)

const saveAndExit = "Save & Exit"

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type configModel struct {
	cursor    int
	fields    []string
	config    model.Config
	textInput textinput.Model
	editMode  bool
	saved     bool
	err       error
}

func newConfigModel(config model.Config) *configModel {
	return &configModel{
		fields:    configFields(),
		config:    config,
		textInput: textinput.New(),
	}
}

func configFields() []string {
	return []string{
		"Style", "Sort", "Encoding", "Output",
		"Bibliography.Files", "Bibliography.Exclude",
		"Documents.Files", "Documents.Exclude",
		"Watch.DebounceMs",
		saveAndExit,
	}
}

func (m *configModel) Init() tea.Cmd {
	return nil
}

func (m *configModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editMode {
		switch key.String() {
		case "enter":
			if err := m.setFieldValue(m.fields[m.cursor], m.textInput.Value()); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.editMode = false
			m.textInput.Blur()
		case "esc":
			m.err = nil
			m.editMode = false
			m.textInput.Blur()
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "enter":
		if m.fields[m.cursor] == saveAndExit {
			if err := store.SaveConfig(m.config); err != nil {
				m.err = err
				return m, nil
			}
			m.saved = true
			return m, tea.Quit
		}
		m.editMode = true
		m.textInput.SetValue(m.fieldValue(m.fields[m.cursor]))
		m.textInput.CursorEnd()
		m.textInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *configModel) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("📄 Configure nihref") + "\n\n")

	for i, field := range m.fields {
		line := field
		if field != saveAndExit {
			line = fmt.Sprintf("%s: %s", field, m.fieldValue(field))
		}
		if m.cursor == i {
			s.WriteString("👉 " + selectedStyle.Render(line) + "\n")
		} else {
			s.WriteString("   " + line + "\n")
		}
	}

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + m.fields[m.cursor] + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString(helpStyle.Render("(Enter to apply, ESC to cancel; lists are comma separated)") + "\n")
	} else {
		s.WriteString("\n" + helpStyle.Render("↑/↓ to move, Enter to edit, q to quit without saving") + "\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render("⚠️ "+m.err.Error()) + "\n")
	}
	return s.String()
}

func (m *configModel) fieldValue(field string) string {
	switch field {
	case "Style":
		return m.config.Style
	case "Sort":
		return m.config.Sort
	case "Encoding":
		return m.config.Encoding
	case "Output":
		return m.config.Output
	case "Bibliography.Files":
		return strings.Join(m.config.Bibliography.Files, ", ")
	case "Bibliography.Exclude":
		return strings.Join(m.config.Bibliography.Exclude, ", ")
	case "Documents.Files":
		return strings.Join(m.config.Documents.Files, ", ")
	case "Documents.Exclude":
		return strings.Join(m.config.Documents.Exclude, ", ")
	case "Watch.DebounceMs":
		return strconv.Itoa(m.config.Watch.DebounceMs)
	default:
		return ""
	}
}

func (m *configModel) setFieldValue(field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case "Style":
		if _, err := style.Lookup(value); err != nil {
			return err
		}
		m.config.Style = strings.ToLower(value)
	case "Sort":
		if _, err := refs.Sort(nil, value); err != nil {
			return err
		}
		m.config.Sort = value
	case "Encoding":
		if err := store.CheckEncoding(value); err != nil {
			return err
		}
		m.config.Encoding = value
	case "Output":
		m.config.Output = value
	case "Bibliography.Files":
		m.config.Bibliography.Files = splitList(value)
	case "Bibliography.Exclude":
		m.config.Bibliography.Exclude = splitList(value)
	case "Documents.Files":
		m.config.Documents.Files = splitList(value)
	case "Documents.Exclude":
		m.config.Documents.Exclude = splitList(value)
	case "Watch.DebounceMs":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("debounce must be a non-negative number of milliseconds")
		}
		m.config.Watch.DebounceMs = n
	}
	return nil
}

func splitList(value string) []string {
	list := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure config.yaml interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := store.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), configPath)

		config, err := store.LoadConfig()
		if err != nil {
			return fmt.Errorf("❌ Failed to read config file: %w", err)
		}

		final, err := tea.NewProgram(newConfigModel(*config)).Run()
		if err != nil {
			return fmt.Errorf("❌ Error running TUI: %w", err)
		}
		if m, ok := final.(*configModel); ok && m.saved {
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Config saved to", configPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
