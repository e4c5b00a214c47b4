package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/jeeprep/internal/cache"
	"github.com/vytor/jeeprep/internal/config"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository/jsonfile"
)

const bankJSON = `{"problems": [
	{"id": 1, "title": "Projectile Motion", "topic": "Physics", "difficulty": "Easy",
	 "options": [{"id": "A", "text": "a"}, {"id": "B", "text": "b"}], "correct_answer": "B"},
	{"id": "2", "title": "Chemical Equilibrium", "category": "Chemistry", "difficulty": "medium",
	 "options": [{"id": "C", "text": "c"}], "correct_answer": "C"}
]}`

const bankYAML = `problems:
  - id: 7
    title: Definite Integrals
    topic: Mathematics
    difficulty: Hard
    options:
      - {id: D, text: pi/4}
    correct_answer: D
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadProblemsFile(t *testing.T) {
	problems, err := readProblemsFile(writeFile(t, "bank.json", bankJSON))
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, models.ProblemID("1"), problems[0].ID)
	assert.Equal(t, "Chemistry", problems[1].Topic)

	problems, err = readProblemsFile(writeFile(t, "bank.yaml", bankYAML))
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, models.ProblemID("7"), problems[0].ID)

	bare := "- id: 3\n  title: Bare\n  difficulty: Easy\n  options: [{id: A, text: x}]\n  correct_answer: A\n"
	problems, err = readProblemsFile(writeFile(t, "bank.yml", bare))
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, "Bare", problems[0].Title)

	_, err = readProblemsFile(writeFile(t, "broken.json", `[{"id": 1`))
	assert.Error(t, err)

	_, err = readProblemsFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSeed_IsIdempotent(t *testing.T) {
	store, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	path := writeFile(t, "bank.json", bankJSON)

	added, err := seed(ctx, store, path, "user1")
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = seed(ctx, store, path, "user1")
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	user, err := store.Users.Get(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, "user1", user.ID)
}

func TestSeed_RejectsInvalidBank(t *testing.T) {
	dataDir := t.TempDir()
	store, err := jsonfile.NewStore(dataDir)
	require.NoError(t, err)

	path := writeFile(t, "bad.json", `[{"id": 1, "title": "No options", "difficulty": "Easy", "correct_answer": "A"}]`)
	_, err = seed(context.Background(), store, path, "")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dataDir, jsonfile.ProblemsFile))
}

func TestSeedCommand(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", config.DriverFile)
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("LOG_LEVEL", "ERROR")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed", writeFile(t, "bank.json", bankJSON)})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "imported 2 new problems")

	assert.FileExists(t, filepath.Join(dataDir, jsonfile.ProblemsFile))
}

func TestSeedCommand_RequiresFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed"})
	assert.Error(t, cmd.Execute())
}

func TestOpenLeaderboardCache_FallsBackWithoutRedis(t *testing.T) {
	log := logger.Discard()

	lc, closeFn := openLeaderboardCache(context.Background(), config.Config{}, log)
	assert.IsType(t, cache.Nop{}, lc)
	assert.NoError(t, closeFn())

	cfg := config.Config{RedisAddr: "127.0.0.1:1"}
	lc, closeFn = openLeaderboardCache(context.Background(), cfg, log)
	assert.IsType(t, cache.Nop{}, lc)
	assert.NoError(t, closeFn())
}

func TestLoadConfig_RejectsInvalidDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	_, _, err := loadConfig()
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
}
