package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/internal/models"
	"github.com/notehub/notehub/internal/ui"
	"github.com/notehub/notehub/notes"
)

// runForm shows a prompt form, mapping a user abort to errAborted.
func runForm(groups ...*huh.Group) error {
	err := huh.NewForm(groups...).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return errAborted
	}

	return err
}

// credentials returns the values of the given flags, prompting for the ones
// that were not passed.
func credentials(ctx *cli.Context, withName bool) (name, email, password string, err error) {
	name = ctx.String("name")
	email = ctx.String("email")
	password = ctx.String("password")

	var fields []huh.Field

	if withName && name == "" {
		fields = append(fields, huh.NewInput().Title("Name").Value(&name))
	}

	if email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(&email))
	}

	if password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password))
	}

	if len(fields) > 0 {
		err = runForm(huh.NewGroup(fields...))
	}

	return name, strings.TrimSpace(email), password, err
}

func welcome(u models.User) {
	pterm.Success.Printfln("Logged in as %s", describeUser(u))
}

func describeUser(u models.User) string {
	if u.Name == "" {
		return u.Email
	}

	return fmt.Sprintf("%s <%s>", ui.Highlight(u.Name), u.Email)
}

func registerAction(ctx *cli.Context, e *env) error {
	name, email, password, err := credentials(ctx, true)
	if err != nil {
		return err
	}

	u, err := e.notes().Register(ctx.Context, name, email, password)
	if err != nil {
		return err
	}

	welcome(u)

	return nil
}

func loginAction(ctx *cli.Context, e *env) error {
	_, email, password, err := credentials(ctx, false)
	if err != nil {
		return err
	}

	u, err := e.notes().Login(ctx.Context, email, password)
	if err != nil {
		return err
	}

	welcome(u)

	return nil
}

func logoutAction(_ *cli.Context, e *env) error {
	if err := e.notes().Logout(); err != nil {
		return err
	}

	pterm.Success.Println("Logged out")

	return nil
}

func whoamiAction(_ *cli.Context, e *env) error {
	u, ok := e.notes().User()
	if !ok {
		return errNotLoggedIn
	}

	fmt.Fprintf(config.Stdout, "[%s] %s\n", u.Initial(), describeUser(u))

	return nil
}

func noteID(ctx *cli.Context) (string, error) {
	id := strings.TrimSpace(ctx.Args().First())
	if id == "" {
		return "", errMissingNoteID
	}

	return id, nil
}

func listNotesAction(ctx *cli.Context, e *env) error {
	list, err := e.notes().List(ctx.Context)
	if err != nil {
		return err
	}

	if v := ctx.String("since"); v != "" {
		since, err := parseSince(v, time.Now())
		if err != nil {
			return err
		}

		list = filterSince(list, since)
	}

	if err := sortNotes(list, ctx.String("sort")); err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(list)
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(list) == 0 {
		pterm.Info.Println(noNotesMsg)
		return nil
	}

	printNotesTable(config.Stdout, list)

	return nil
}

func showNoteAction(ctx *cli.Context, e *env) error {
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	n, err := e.notes().Find(ctx.Context, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(config.Stdout, "%s\n%s\n\n%s\n", ui.Highlight(n.Title), formatDate(n.Modified()), n.Content)

	return nil
}

// noteForm prompts for the title and content of a note, starting from the
// given values.
func noteForm(title, content *string) error {
	return runForm(huh.NewGroup(
		huh.NewInput().Title("Title").Value(title),
		huh.NewText().Title("Content").Value(content),
	))
}

func addNoteAction(ctx *cli.Context, e *env) error {
	title := ctx.String("title")
	content := ctx.String("content")

	if title == "" || !ctx.IsSet("content") {
		if err := noteForm(&title, &content); err != nil {
			return err
		}
	}

	if strings.TrimSpace(title) == "" {
		return errEmptyTitle
	}

	n, err := e.notes().Save(ctx.Context, "", title, content)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Note %s created", ui.Cyan(n.ID))

	return nil
}

func editNoteAction(ctx *cli.Context, e *env) error {
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	client := e.notes()

	n, err := client.Find(ctx.Context, id)
	if err != nil {
		return err
	}

	title, content := n.Title, n.Content

	if ctx.IsSet("title") {
		title = ctx.String("title")
	}

	if ctx.IsSet("content") {
		content = ctx.String("content")
	}

	if !ctx.IsSet("title") && !ctx.IsSet("content") {
		if err := noteForm(&title, &content); err != nil {
			return err
		}
	}

	if strings.TrimSpace(title) == "" {
		return errEmptyTitle
	}

	if _, err := client.Save(ctx.Context, id, title, content); err != nil {
		return err
	}

	pterm.Success.Printfln("Note %s updated", ui.Cyan(id))

	return nil
}

func deleteNoteAction(ctx *cli.Context, e *env) error {
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	ok, err := confirm(ctx, fmt.Sprintf("Delete note %s?", id))
	if err != nil || !ok {
		return err
	}

	if err := e.notes().Delete(ctx.Context, id); err != nil {
		return err
	}

	pterm.Success.Printfln("Note %s deleted", ui.Cyan(id))

	return nil
}

func downloadNoteAction(ctx *cli.Context, e *env) error {
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	n, err := e.notes().Find(ctx.Context, id)
	if err != nil {
		return err
	}

	path, err := notes.Download(n, ctx.String("dir"))
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Saved to %s", path)

	return nil
}
