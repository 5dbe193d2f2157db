package tui

import (
	"github.com/notekeeper-app/notekeeper/models"
)

type signInDoneMsg struct {
	user models.User
	err  error
}

type signUpDoneMsg struct {
	user models.User
	err  error
}

type resetCodeSentMsg struct {
	email string
	err   error
}

type resetDoneMsg struct {
	err error
}

type listLoadedMsg struct {
	seq   int
	items []models.NoteView
	err   error
}

type noteLoadedMsg struct {
	seq  int
	view models.NoteView
	err  error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	noteID string
	err    error
}

type notesPurgedMsg struct {
	result models.BatchResult
}

type attachmentUploadedMsg struct {
	key string
	err error
}

type accountLoadedMsg struct {
	email string
	err   error
}

type emailCodeSentMsg struct {
	email string
	err   error
}

type emailVerifiedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
