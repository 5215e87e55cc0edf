package cli

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/calder-r/ndcube"
)

var playShuffle int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve a scrambled cube interactively",
	Long: `Start an interactive session against a scrambled cube.

Enter rotations as four digits (like 1202), where
  - the first digit is the axis to rotate around
  - the second digit is the axis to rotate from
  - the third digit is the axis to rotate to
  - the fourth digit is the side to rotate (either 0 or 2)

For example, to rotate the top face of a 3D cube clockwise: we rotate
around the Y axis (1), from the Z axis (2), to the X axis (0), on the
high side (2) - so the command is 1202.

Keyboard shortcuts:
  enter   - apply the typed rotation
  u       - undo the last rotation
  r       - reset to a fresh scramble
  q/Esc   - quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playShuffle, "shuffle", 100, "Number of random scramble rotations")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	inputStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model
type playModel struct {
	tracker  *ndcube.Tracker
	rng      *rand.Rand
	input    string
	errText  string
	solved   string
	quitting bool
}

func newPlayModel(tracker *ndcube.Tracker, rng *rand.Rand) *playModel {
	m := &playModel{tracker: tracker, rng: rng}
	tracker.SetSolvedCallback(func(moves int) {
		m.solved = fmt.Sprintf("Solved in %d rotations!", moves)
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			m.applyInput()

		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		case "u":
			if m.tracker.Undo() {
				m.errText = ""
			} else {
				m.errText = "nothing to undo"
			}

		case "r":
			m.tracker.Reset()
			m.tracker.Shuffle(m.rng, playShuffle)
			m.input = ""
			m.errText = ""
			m.solved = ""

		case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if len(m.input) < 4 {
				m.input += msg.String()
			}
		}
	}
	return m, nil
}

// applyInput parses and validates the typed rotation. All malformed
// input is reported here; nothing invalid ever reaches the cube.
func (m *playModel) applyInput() {
	input := m.input
	m.input = ""

	r, err := ndcube.ParseRotation(input)
	if err != nil {
		m.errText = err.Error()
		return
	}
	if err := m.tracker.Apply(r); err != nil {
		m.errText = err.Error()
		return
	}
	m.errText = ""
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("The N-D Cube (where N is currently %d)", m.tracker.Cube().Dims())))
	b.WriteString("\n\n")
	b.WriteString(renderCube(m.tracker.Cube()))
	b.WriteString(renderSummary(m.tracker.Cube()))
	b.WriteString("\n\n")

	if m.solved != "" {
		b.WriteString(solvedStyle.Render(m.solved))
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	b.WriteString(inputStyle.Render("Rotation: " + m.input + "_"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("four digits axis/from/to/side, enter to apply - u undo, r rescramble, q quit"))
	b.WriteString("\n")
	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	tracker, err := ndcube.NewTracker(dims)
	if err != nil {
		return err
	}

	rng, usedSeed := newRNG()
	tracker.Shuffle(rng, playShuffle)
	if verbose {
		fmt.Printf("scrambled with %d rotations (seed %d)\n", playShuffle, usedSeed)
	}

	p := tea.NewProgram(newPlayModel(tracker, rng))
	_, err = p.Run()
	return err
}
