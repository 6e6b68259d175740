package main

import (
	"embed"
	"os"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	planner "github.com/AnmoL11221/Voice-Task-Planner"
	"github.com/AnmoL11221/Voice-Task-Planner/charmlog"
	"github.com/AnmoL11221/Voice-Task-Planner/dates"
	"github.com/AnmoL11221/Voice-Task-Planner/dispatch"
	"github.com/AnmoL11221/Voice-Task-Planner/intent"
	"github.com/AnmoL11221/Voice-Task-Planner/sqlite"
	"github.com/AnmoL11221/Voice-Task-Planner/voice"
)

var logger planner.Logger

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	// conf
	conf := planner.LoadConfig()
	f, err := os.OpenFile(conf.LogPath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o666)
	if err != nil {
		panic(err)
	}
	defer f.Close() //nolint:errcheck
	logger = charmlog.NewLogger(charmlog.Options{
		Writer: f,
		Level:  conf.LogLevel,
	})
	logger.Info("loaded config", "db", conf.DatabaseURL, "model", conf.OpenAIModel, "voice", conf.VoiceOutput)

	// db
	conn, err := sqlite.Open(conf.DatabaseURL)
	if err != nil {
		logger.Error("failed database open", "error", err)
		os.Exit(1)
	}
	if err := conn.Migrate(migrations); err != nil {
		logger.Error("failed migration", "error", err)
		os.Exit(1)
	}
	defer conn.Close() //nolint:errcheck

	_, dbGetter := txStdLib.NewTransactor(conn.DB(), txStdLib.NestedTransactionsSavepoints)

	// store
	store := sqlite.NewTaskStore(dbGetter, logger)

	// classifier
	if conf.OpenAIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set; every command will classify as UNKNOWN")
	}
	client := intent.NewOpenAIClient(conf.OpenAIKey, conf.OpenAIModel)
	classifier := intent.NewClassifier(client, logger)

	// dispatcher
	dispatcher := dispatch.New(store, classifier, dates.NewNormalizer(), logger)

	// speaker
	var speaker voice.Speaker = voice.NoopSpeaker{}
	if conf.VoiceOutput {
		s, err := voice.NewCommandSpeaker()
		if err != nil {
			logger.Warn("voice output unavailable", "error", err)
		} else {
			speaker = s
		}
	}

	// start program
	userinput := textinput.New()
	userinput.Focus()
	userinput.CharLimit = 280
	userinput.Placeholder = "say something"
	userinput.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))

	m := model{
		l:          logger,
		dispatcher: dispatcher,
		speaker:    speaker,
		cmdTimeout: 30 * time.Second,
		userinput:  userinput,
		vp:         viewport.New(0, 0),
		transcript: []line{{speaker: speakerPlanner, text: dispatch.Greeting}},
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		logger.Error(err.Error())
	}
}
