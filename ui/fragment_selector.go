package ui

import (
	"io/fs"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"dlis-forge/ds"
)

const (
	CwdStateCorrect   = "correct"
	CwdStateIncorrect = "incorrect"
	CwdStateBlank     = ""
)

// FragmentSelector shows whether the current directory looks like a fixture
// fragment folder, going by the presence of .part files.
type FragmentSelector struct {
	cwd      string
	cwdState string
}

func CreateFragmentSelector() FragmentSelector {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Wrap(err, "CreateFragmentSelector get current working directory error")
		log.Panic(err)
	}
	return FragmentSelector{
		cwd:      cwd,
		cwdState: CwdStateBlank,
	}
}

type FileName string

func ReadDirectory(path string) []FileName {
	entries, err := os.ReadDir(path)
	if err != nil {
		log.Fatal(err)
	}

	fileNames := lo.Map(
		entries,
		func(t fs.DirEntry, _ int) FileName {
			return FileName(t.Name())
		},
	)
	return fileNames
}

func hasFragments(fileNames []FileName) bool {
	return lo.SomeBy(
		fileNames,
		func(fileName FileName) bool {
			return strings.HasSuffix(string(fileName), ".part")
		},
	)
}

func (s FragmentSelector) View() string {
	output := "DLIS FORGE\n\n"
	output += "Current directory: " + s.cwd + "\n"

	switch s.cwdState {
	case CwdStateIncorrect, CwdStateBlank:
		output += "Please choose a folder with .part fragment files"
	case CwdStateCorrect:
		output += "Looks like a valid fragment folder"
	default:
		log.Panic(ds.ErrUnreachableCode{Caller: "FragmentSelector.View"})
	}

	return output
}

func (s FragmentSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		case "enter":
			if hasFragments(ReadDirectory(s.cwd)) {
				s.cwdState = CwdStateCorrect
			} else {
				s.cwdState = CwdStateIncorrect
			}
			return s, nil
		}
	}
	return s, nil
}

func (s FragmentSelector) Init() tea.Cmd {
	return nil
}
