package main

import (
	"log"
	"os"

	"github.com/gotk3/gotk3/gtk"
)

// fatalDialog reports a startup failure and aborts. The message also
// goes to the log in case no display is reachable for the dialog.
// Rendering is never attempted after a setup failure.
func fatalDialog(err error) {
	log.Println(err)

	if gtkErr := gtk.InitCheck(nil); gtkErr == nil {
		dialog := gtk.MessageDialogNew(
			nil,
			gtk.DIALOG_MODAL,
			gtk.MESSAGE_ERROR,
			gtk.BUTTONS_CLOSE,
			"%s",
			err.Error(),
		)
		dialog.SetTitle("mandelzoom")
		dialog.Run()
		dialog.Destroy()
	}

	os.Exit(1)
}
