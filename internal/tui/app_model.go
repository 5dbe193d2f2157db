package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notekeeper-app/notekeeper/internal/service"
	"github.com/notekeeper-app/notekeeper/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenForgot
	screenHome
	screenDetail
	screenAccount
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	forgot   forgotModel
	home     homeModel
	detail   detailModel
	account  accountModel

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	quitByUser bool
	resultUser models.User
	logout     bool
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		forgot:        newForgotModel(),
		buildInfo:     buildInfo,
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	m := newLoginAppModel(ctx, services, buildInfo)
	m.mode = modeMain
	m.currentScreen = screenHome
	m.home = newHomeModel()
	m.home.loadSeq = 1
	m.detail = newDetailModel()
	m.account = newAccountModel()
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(textinput.Blink, m.cmdLoadNotes(m.home.loadSeq))
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}

		if m.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(keyMsg)
		}
	}

	if model, cmd, handled := m.applyAsync(msg); handled {
		return model, cmd
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenForgot:
		return m.updateForgot(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenAccount:
		return m.updateAccount(msg)
	}

	return m, nil
}

// applyAsync handles the completion messages of background commands. The
// second return value reports whether the message was consumed.
func (m appModel) applyAsync(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case signInDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		m.resultUser = msg.user
		return m, tea.Quit, true

	case signUpDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.register.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		m.resultUser = msg.user
		return m, tea.Quit, true

	case resetCodeSentMsg:
		m.forgot.submitting = false
		if msg.err != nil {
			m.forgot.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		m.forgot.startConfirmStage(msg.email)
		return m, textinput.Blink, true

	case resetDoneMsg:
		m.forgot.submitting = false
		if msg.err != nil {
			m.forgot.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		m.forgot = newForgotModel()
		m.welcome.status = "Password updated, sign in with the new password"
		m.currentScreen = screenWelcome
		return m, nil, true

	case listLoadedMsg:
		// A response from an outdated load is dropped so navigating away
		// and back never applies stale data.
		if msg.seq != m.home.loadSeq {
			return m, nil, true
		}
		if msg.err != nil {
			if m.home.state == homeLoading {
				m.home.state = homeFailed
			}
			m.home.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		m.home.errMsg = ""
		m.home.setItems(msg.items)
		return m, nil, true

	case noteLoadedMsg:
		if msg.seq != m.detail.loadSeq || m.currentScreen != screenDetail {
			return m, nil, true
		}
		if msg.err != nil {
			m.currentScreen = screenHome
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil, true
		}
		m.detail.applyLoaded(msg.view)
		return m, nil, true

	case noteSavedMsg:
		m.detail.submitting = false
		if msg.err != nil {
			// Stay in editing and keep the typed content.
			m.detail.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		m.detail.startLoad(msg.note.NoteID)
		m.detail.status = "Saved"
		return m, m.cmdLoadNote(m.detail.loadSeq, msg.note.NoteID), true

	case noteDeletedMsg:
		if msg.err != nil {
			// The collections stay untouched on a failed delete.
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil, true
		}
		m.home.removeNote(msg.noteID)
		m.home.status = "Note deleted"
		m.currentScreen = screenHome
		return m, cmdClearStatus(), true

	case notesPurgedMsg:
		result := msg.result
		m.home.batch = &result
		m.home.state = homeLoading
		m.home.loadSeq++
		return m, m.cmdLoadNotes(m.home.loadSeq), true

	case attachmentUploadedMsg:
		m.detail.uploading = false
		if msg.err != nil {
			m.detail.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		attachmentKey := msg.key
		m.detail.pendingAttachment = &attachmentKey
		m.detail.attaching = false
		m.detail.errMsg = ""
		return m, nil, true

	case accountLoadedMsg:
		if msg.err != nil {
			m.account.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		m.account.currentEmail = msg.email
		return m, nil, true

	case emailCodeSentMsg:
		m.account.submitting = false
		if msg.err != nil {
			m.account.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		m.account.startCodeStage(msg.email)
		return m, textinput.Blink, true

	case emailVerifiedMsg:
		m.account.submitting = false
		if msg.err != nil {
			m.account.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil, true
		}
		m.home.status = "Email updated"
		m.currentScreen = screenHome
		return m, cmdClearStatus(), true

	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus(), true

	case clearStatusMsg:
		m.home.status = ""
		m.detail.status = ""
		return m, nil, true
	}

	return m, nil, false
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenForgot:
		body = m.forgot.View()
	case screenHome:
		body = m.home.View()
	case screenDetail:
		body = m.detail.View()
	case screenAccount:
		body = m.account.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// ── Confirmation overlay ─────────────────────────────────────────────────────

func (m appModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		kind := m.confirm.kind
		m.showConfirm = false
		m.confirm = confirmModel{}

		switch kind {
		case confirmDeleteOne:
			noteID := m.pendingDelete
			m.pendingDelete = ""
			if noteID == "" {
				return m, nil
			}
			return m, m.cmdDeleteNote(noteID)
		case confirmDeleteAll:
			ids := make([]string, 0, len(m.home.items))
			for _, item := range m.home.items {
				ids = append(ids, item.NoteID)
			}
			return m, m.cmdDeleteAll(ids)
		}
		return m, nil

	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
		m.pendingDelete = ""
		return m, nil
	}

	return m, nil
}

// ── Authentication screens ───────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.welcome.status = ""
		switch m.welcome.idx {
		case 0:
			m.currentScreen = screenLogin
		case 1:
			m.currentScreen = screenRegister
		default:
			m.currentScreen = screenForgot
		}
		return m, textinput.Blink
	case keyMsg.String() == "v":
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.login = newLoginModel()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.inputs, m.login.focus = focusNext(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.inputs, m.login.focus = focusPrev(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if email == "" || password == "" {
				m.login.errMsg = "Email and password are required"
				return m, nil
			}

			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdSignIn(email, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.register = newRegisterModel()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.inputs, m.register.focus = focusNext(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.inputs, m.register.focus = focusPrev(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.register.inputs[0].Value())
			password := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if email == "" || password == "" {
				m.register.errMsg = "Email and password are required"
				return m, nil
			}
			if password != repeat {
				m.register.errMsg = "Passwords do not match"
				return m, nil
			}

			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdSignUp(email, password)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateForgot(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.forgot = newForgotModel()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.forgot.inputs, m.forgot.focus = focusNext(m.forgot.inputs, m.forgot.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.forgot.inputs, m.forgot.focus = focusPrev(m.forgot.inputs, m.forgot.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.forgot.submitting {
				return m, nil
			}

			switch m.forgot.stage {
			case forgotStageEmail:
				email := strings.TrimSpace(m.forgot.inputs[0].Value())
				if email == "" {
					m.forgot.errMsg = "Email is required"
					return m, nil
				}
				m.forgot.errMsg = ""
				m.forgot.submitting = true
				return m, m.cmdForgotPassword(email)
			case forgotStageConfirm:
				code := strings.TrimSpace(m.forgot.inputs[0].Value())
				password := m.forgot.inputs[1].Value()
				if code == "" || password == "" {
					m.forgot.errMsg = "Code and new password are required"
					return m, nil
				}
				m.forgot.errMsg = ""
				m.forgot.submitting = true
				return m, m.cmdForgotSubmit(m.forgot.email, code, password)
			}
		}
	}

	var cmd tea.Cmd
	m.forgot.inputs[m.forgot.focus], cmd = m.forgot.inputs[m.forgot.focus].Update(msg)
	return m, cmd
}

// ── Main screens ─────────────────────────────────────────────────────────────

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.home.searchFocused {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
			m.home.searchFocused = false
			m.home.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.home.search, cmd = m.home.search.Update(msg)
			m.home.refilter()
			return m, cmd
		}
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.filtered)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.home.searchFocused = true
		m.home.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		m.home.status = ""
		m.home.batch = nil
		m.home.state = homeLoading
		m.home.loadSeq++
		return m, m.cmdLoadNotes(m.home.loadSeq)
	case key.Matches(keyMsg, keys.newItem):
		m.detail.startNew()
		m.currentScreen = screenDetail
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.home.current()
		if !ok {
			m.home.status = "No notes"
			return m, nil
		}
		m.detail.startLoad(item.NoteID)
		m.currentScreen = screenDetail
		return m, m.cmdLoadNote(m.detail.loadSeq, item.NoteID)
	case key.Matches(keyMsg, keys.edit):
		item, ok := m.home.current()
		if !ok {
			m.home.status = "No notes"
			return m, nil
		}
		m.detail.startLoad(item.NoteID)
		m.currentScreen = screenDetail
		return m, m.cmdLoadNote(m.detail.loadSeq, item.NoteID)
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.home.current()
		if !ok {
			m.home.status = "No notes"
			return m, nil
		}
		m.pendingDelete = item.NoteID
		m.confirm = confirmModel{kind: confirmDeleteOne, title: fitText(item.Title, 40)}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.deleteAll):
		if len(m.home.items) == 0 {
			m.home.status = "No notes"
			return m, nil
		}
		m.confirm = confirmModel{kind: confirmDeleteAll, count: len(m.home.items)}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.account):
		m.account.reset("...")
		m.currentScreen = screenAccount
		return m, tea.Batch(textinput.Blink, m.cmdLoadAccount())
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	switch m.detail.state {
	case detailLoading:
		if ok && key.Matches(keyMsg, keys.esc) {
			return m.backToHome()
		}
		return m, nil

	case detailViewing:
		if !ok {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.backToHome()
		case key.Matches(keyMsg, keys.edit):
			m.detail.startEdit()
			return m, textinput.Blink
		case key.Matches(keyMsg, keys.copy):
			return m, cmdCopy(m.detail.view.Content)
		case key.Matches(keyMsg, keys.delete):
			m.pendingDelete = m.detail.noteID
			m.confirm = confirmModel{kind: confirmDeleteOne, title: fitText(m.detail.view.Title, 40)}
			m.showConfirm = true
		}
		return m, nil

	case detailEditing:
		if m.detail.attaching {
			return m.updateAttaching(msg)
		}

		if ok {
			switch {
			case key.Matches(keyMsg, keys.esc):
				if m.detail.isNew {
					return m.backToHome()
				}
				m.detail.cancelEdit()
				return m, nil
			case key.Matches(keyMsg, keys.save):
				if m.detail.submitting {
					return m, nil
				}

				content := m.detail.editor.Value()
				if strings.TrimSpace(content) == "" {
					// Rejected locally, no request is made.
					m.detail.errMsg = "Content cannot be empty"
					return m, nil
				}

				m.detail.errMsg = ""
				m.detail.submitting = true
				return m, m.cmdSaveNote(m.detail.isNew, m.detail.noteID, content, m.detail.pendingAttachment)
			case key.Matches(keyMsg, keys.attach):
				m.detail.startAttach()
				return m, textinput.Blink
			case key.Matches(keyMsg, keys.detach):
				m.detail.pendingAttachment = nil
				return m, nil
			}
		}

		var cmd tea.Cmd
		m.detail.editor, cmd = m.detail.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateAttaching(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.detail.attaching = false
			m.detail.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.detail.uploading {
				return m, nil
			}

			path := strings.TrimSpace(m.detail.attachPath.Value())
			if path == "" {
				m.detail.errMsg = "File path is required"
				return m, nil
			}

			m.detail.errMsg = ""
			m.detail.uploading = true
			return m, m.cmdUploadAttachment(path)
		}
	}

	var cmd tea.Cmd
	m.detail.attachPath, cmd = m.detail.attachPath.Update(msg)
	return m, cmd
}

func (m appModel) updateAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.backToHome()
		case key.Matches(keyMsg, keys.enter):
			if m.account.submitting {
				return m, nil
			}

			switch m.account.stage {
			case accountStageEmail:
				email := strings.TrimSpace(m.account.input.Value())
				if email == "" {
					m.account.errMsg = "New email is required"
					return m, nil
				}
				m.account.errMsg = ""
				m.account.submitting = true
				return m, m.cmdUpdateEmail(email)
			case accountStageCode:
				code := strings.TrimSpace(m.account.input.Value())
				if code == "" {
					m.account.errMsg = "Code is required"
					return m, nil
				}
				m.account.errMsg = ""
				m.account.submitting = true
				return m, m.cmdVerifyEmail(code)
			}
		}
	}

	var cmd tea.Cmd
	m.account.input, cmd = m.account.input.Update(msg)
	return m, cmd
}

// backToHome returns to the note list and reloads it so edits and deletes
// made on other screens are reflected.
func (m appModel) backToHome() (tea.Model, tea.Cmd) {
	m.currentScreen = screenHome
	m.home.state = homeLoading
	m.home.loadSeq++
	return m, m.cmdLoadNotes(m.home.loadSeq)
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		user, err := svc.SignIn(ctx, email, password)
		return signInDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdSignUp(email, password string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		user, err := svc.SignUp(ctx, email, password)
		return signUpDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdForgotPassword(email string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		err := svc.ForgotPassword(ctx, email)
		return resetCodeSentMsg{email: email, err: err}
	}
}

func (m appModel) cmdForgotSubmit(email, code, newPassword string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		err := svc.ForgotPasswordSubmit(ctx, email, code, newPassword)
		return resetDoneMsg{err: err}
	}
}

func (m appModel) cmdLoadNotes(seq int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		items, err := svc.ListWithPreviews(ctx)
		return listLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (m appModel) cmdLoadNote(seq int, noteID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		view, err := svc.GetView(ctx, noteID)
		return noteLoadedMsg{seq: seq, view: view, err: err}
	}
}

func (m appModel) cmdSaveNote(isNew bool, noteID, content string, attachment *string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		var (
			note models.Note
			err  error
		)
		if isNew {
			note, err = svc.Create(ctx, content, attachment)
		} else {
			note, err = svc.Update(ctx, noteID, content, attachment)
		}
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdDeleteNote(noteID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		err := svc.Delete(ctx, noteID)
		return noteDeletedMsg{noteID: noteID, err: err}
	}
}

func (m appModel) cmdDeleteAll(noteIDs []string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		return notesPurgedMsg{result: svc.DeleteAll(ctx, noteIDs)}
	}
}

func (m appModel) cmdUploadAttachment(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AttachmentService

	return func() tea.Msg {
		result, err := svc.UploadFile(ctx, path)
		return attachmentUploadedMsg{key: result.Key, err: err}
	}
}

func (m appModel) cmdLoadAccount() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		user, err := svc.CurrentUser(ctx)
		return accountLoadedMsg{email: user.Email, err: err}
	}
}

func (m appModel) cmdUpdateEmail(newEmail string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		err := svc.UpdateEmail(ctx, newEmail)
		return emailCodeSentMsg{email: newEmail, err: err}
	}
}

func (m appModel) cmdVerifyEmail(code string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		err := svc.VerifyEmail(ctx, code)
		return emailVerifiedMsg{err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNext(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}

func focusPrev(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}
