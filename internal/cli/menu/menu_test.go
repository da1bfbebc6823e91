package menu

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projects/internal/database"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
	"github.com/thenoetrevino/projects/internal/testutil"
)

func setupShell(t *testing.T, input string) (*Shell, *bytes.Buffer, projectservice.Service) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := projectservice.NewService(database.NewProjectRepo(db, database.SQLite), nil)
	var out bytes.Buffer
	return NewShell(svc, strings.NewReader(input), &out), &out, svc
}

// lines joins menu answers into shell input
func lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func TestBlankOperationQuits(t *testing.T) {
	shell, out, _ := setupShell(t, "\n")

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "1- Add a project")
	assert.Contains(t, out.String(), "5- Delete a project")
	assert.Contains(t, out.String(), "You are not working with a project.")
	assert.Contains(t, out.String(), "Exiting the menu.")
}

func TestEndOfInputQuits(t *testing.T) {
	shell, out, _ := setupShell(t, "")

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "Exiting the menu.")
}

func TestAddAndListProjects(t *testing.T) {
	input := lines(
		"1", "Birdhouse", "4.5", "", "2", "use cedar",
		"1", "Armchair", "20", "1.255", "4", "",
		"2",
		"",
	)
	shell, out, svc := setupShell(t, input)

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "You have successfully created project")

	projects, err := svc.GetAllProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Armchair", projects[0].Name)
	assert.Equal(t, "1.26", projects[0].ActualHours.StringFixed(2))
	assert.Equal(t, "Birdhouse", projects[1].Name)
	assert.True(t, projects[1].ActualHours.IsZero(), "blank hours mean zero on create")

	listing := out.String()[strings.LastIndex(out.String(), "Projects:"):]
	assert.Less(t, strings.Index(listing, "Armchair"), strings.Index(listing, "Birdhouse"))
}

func TestAddRepromptsForDifficulty(t *testing.T) {
	input := lines("1", "Stool", "1", "1", "9", "abc", "3", "", "")
	shell, out, svc := setupShell(t, input)

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "difficulty must be between 1 and 5")

	projects, err := svc.GetAllProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, 3, projects[0].Difficulty)
}

func TestInvalidInputKeepsLooping(t *testing.T) {
	input := lines("seven", "8", "1", "Shelf", "lots", "2", "", "3", "", "")
	shell, out, svc := setupShell(t, input)

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), `"seven" is not a valid number`)
	assert.Contains(t, out.String(), "8 is not a valid option number")
	assert.Contains(t, out.String(), `"lots" is not a valid number`)

	projects, err := svc.GetAllProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Shelf", projects[0].Name)
	assert.Equal(t, "2.00", projects[0].EstimatedHours.StringFixed(2), "hours are asked for again")
}

func TestOverlongLineEndsShell(t *testing.T) {
	shell, _, _ := setupShell(t, strings.Repeat("1", maxLineLength+1)+"\n2\n")

	done := make(chan error, 1)
	go func() {
		done <- shell.Run(context.Background())
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, errReadInput)
		assert.ErrorIs(t, err, bufio.ErrTooLong)
	case <-time.After(5 * time.Second):
		t.Fatal("shell kept running after an unreadable line")
	}
}

func TestSelectShowsChildren(t *testing.T) {
	db := testutil.SetupTestDB(t)
	id := testutil.CreateTestProject(t, db, "Planter")
	testutil.CreateTestStep(t, db, id, "sand the edges", 2)
	testutil.CreateTestStep(t, db, id, "cut the boards", 1)
	testutil.CreateTestMaterial(t, db, id, "cedar board", 4, "12.50")
	testutil.CreateTestCategory(t, db, id, "Garden")

	svc := projectservice.NewService(database.NewProjectRepo(db, database.SQLite), nil)
	var out bytes.Buffer
	shell := NewShell(svc, strings.NewReader(lines("3", "1", "")), &out)

	require.NoError(t, shell.Run(context.Background()))
	require.NotNil(t, shell.Selected())
	assert.Equal(t, "Planter", shell.Selected().Name)

	text := out.String()
	assert.Contains(t, text, "You have selected project: ID=1, name=Planter")
	assert.Contains(t, text, "cedar board")
	assert.Contains(t, text, "Garden")
	assert.Less(t, strings.Index(text, "1. cut the boards"), strings.Index(text, "2. sand the edges"))
}

func TestSelectUnknownProject(t *testing.T) {
	shell, out, _ := setupShell(t, lines("3", "42", ""))

	require.NoError(t, shell.Run(context.Background()))
	assert.Nil(t, shell.Selected())
	assert.Contains(t, out.String(), "project not found")
}

func TestUpdateRequiresSelection(t *testing.T) {
	shell, out, _ := setupShell(t, lines("4", ""))

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "Please select a project first.")
}

func TestUpdateKeepsValuesOnBlankInput(t *testing.T) {
	input := lines(
		"1", "Birdhouse", "4.5", "0", "2", "cedar",
		"3", "1",
		"4", "", "", "3.75", "", "",
		"",
	)
	shell, out, svc := setupShell(t, input)

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "Enter the project name [Birdhouse]")
	assert.Contains(t, out.String(), "Enter the estimated hours [4.50]")
	assert.Contains(t, out.String(), "Project updated successfully!")

	got, err := svc.GetProjectByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Birdhouse", got.Name)
	assert.Equal(t, "4.50", got.EstimatedHours.StringFixed(2))
	assert.Equal(t, "3.75", got.ActualHours.StringFixed(2))
	assert.Equal(t, 2, got.Difficulty)
	assert.Equal(t, "cedar", got.Notes)
	assert.Equal(t, "3.75", shell.Selected().ActualHours.StringFixed(2), "selection is refreshed")
}

func TestDeleteClearsSelection(t *testing.T) {
	input := lines(
		"1", "Birdhouse", "1", "0", "2", "",
		"3", "1",
		"5", "1",
		"",
	)
	shell, out, svc := setupShell(t, input)

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "Project 1 deleted successfully!")
	assert.Nil(t, shell.Selected())

	projects, err := svc.GetAllProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestDeleteUnknownProjectReportsError(t *testing.T) {
	shell, out, _ := setupShell(t, lines("5", "77", ""))

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "Error: project not found: 77")
}

func TestUpdateRepromptsForBadDifficulty(t *testing.T) {
	input := lines(
		"1", "Birdhouse", "1", "0", "2", "",
		"3", "1",
		"4", "", "", "", "6", "4", "",
		"",
	)
	shell, out, svc := setupShell(t, input)

	require.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "difficulty must be between 1 and 5")

	got, err := svc.GetProjectByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Difficulty)
	assert.Equal(t, "1.00", got.EstimatedHours.StringFixed(2))
}
