package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"SketchBoard/internal/settings"
)

// RunApp opens the board window and blocks until it is closed.
func RunApp(s *settings.Settings) error {
	myApp := app.New()
	myWindow := myApp.NewWindow("SketchBoard")
	myWindow.Resize(fyne.NewSize(float32(s.Canvas.Width), float32(s.Canvas.Height)))

	board, err := NewBoardWidget(s)
	if err != nil {
		return err
	}
	toolbar := NewToolbar(board)
	installShortcuts(myWindow.Canvas(), board)

	content := container.NewBorder(toolbar, board.statusBar, nil, nil, board)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
	return nil
}

func installShortcuts(c fyne.Canvas, board *BoardWidget) {
	undo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
	redoAlt := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}

	c.AddShortcut(undo, func(fyne.Shortcut) { board.Undo() })
	c.AddShortcut(redo, func(fyne.Shortcut) { board.Redo() })
	c.AddShortcut(redoAlt, func(fyne.Shortcut) { board.Redo() })
	c.SetOnTypedKey(func(e *fyne.KeyEvent) {
		if e.Name == fyne.KeyEscape {
			board.Cancel()
		}
	})
}
