package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper-app/notekeeper/models"
)

func Test_buildListNotesQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListNotesQuery(42)

	require.NoError(t, err)
	assert.True(t, strings.Contains(query, "FROM notes"))
	assert.True(t, strings.Contains(query, "user_id = $1"))
	assert.True(t, strings.Contains(query, "ORDER BY created_at DESC"))
	require.Len(t, args, 1)
	assert.Equal(t, int64(42), args[0])
}

func Test_buildGetNoteQuery_ScopedByOwner(t *testing.T) {
	query, args, err := buildGetNoteQuery(42, "note-1")

	require.NoError(t, err)
	assert.True(t, strings.Contains(query, "note_id = $1"))
	assert.True(t, strings.Contains(query, "user_id = $2"))
	// squirrel orders map keys alphabetically, note_id binds first.
	require.Len(t, args, 2)
	assert.Equal(t, "note-1", args[0])
	assert.Equal(t, int64(42), args[1])
}

func Test_buildCreateNoteQuery_ReturnsAllColumns(t *testing.T) {
	note := models.Note{NoteID: "note-1", UserID: 42, Content: "hello"}

	query, args, err := buildCreateNoteQuery(note)

	require.NoError(t, err)
	assert.True(t, strings.Contains(query, "INSERT INTO notes"))
	assert.True(t, strings.Contains(query, "RETURNING note_id, user_id, content, attachment, created_at"))
	require.Len(t, args, 5)
	assert.Equal(t, "note-1", args[0])
}

func Test_buildUpdateNoteQuery_NilAttachmentClearsColumn(t *testing.T) {
	query, args, err := buildUpdateNoteQuery(42, "note-1", models.NotePayload{Content: "updated"})

	require.NoError(t, err)
	assert.True(t, strings.Contains(query, "UPDATE notes"))
	assert.True(t, strings.Contains(query, "content = $1"))
	assert.True(t, strings.Contains(query, "attachment = $2"))
	assert.True(t, strings.Contains(query, "RETURNING"))
	require.Len(t, args, 4)
	assert.Nil(t, args[1])
}

func Test_buildDeleteAllNotesQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildDeleteAllNotesQuery(42)

	require.NoError(t, err)
	assert.True(t, strings.Contains(query, "DELETE FROM notes"))
	assert.True(t, strings.Contains(query, "user_id = $1"))
	require.Len(t, args, 1)
}
