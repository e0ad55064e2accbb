package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/clipdrop/internal/classify"
	"github.com/dmitrijs2005/clipdrop/internal/config"
	"github.com/dmitrijs2005/clipdrop/internal/history"
	"github.com/dmitrijs2005/clipdrop/internal/models"
)

// openBrowser is a seam so tests do not spawn external processes.
var openBrowser = func(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	}
	return exec.Command("xdg-open", url).Start()
}

// browse runs the interactive history browser.
func (a *App) browse(ctx context.Context) int {
	limit := config.HistoryLimit(a.cfg.HistoryLimitTag)

	records, malformed, err := a.history.Read(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	if malformed {
		if err := a.history.Write(ctx, records, limit); err != nil {
			fmt.Println("Error:", err)
			return 1
		}
		fmt.Println("Note: corrupted history entries were discarded.")
	}

	mode, badMode, err := a.history.ReadViewMode(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	if badMode {
		_ = a.history.WriteViewMode(ctx, mode)
	}

	var filter classify.Category // empty = all
	current := filtered(records, filter)

	fmt.Println(renderRecords(current, mode))
	fmt.Println("Commands: list, filter <category|all>, copy <n>, open <n>, remove <n>, clear, view <grid|list>, prefs, help, exit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("history %s> ", promptStatus(filter, mode))
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Commands: list, filter <category|all>, copy <n>, open <n>, remove <n>, clear, view <grid|list>, prefs, help, exit")

		case "list":
			fmt.Println(renderRecords(current, mode))

		case "filter":
			if len(args) == 0 {
				fmt.Println("Usage: filter <category|all>")
				continue
			}
			if args[0] == "all" {
				filter = ""
			} else if c := classify.Category(args[0]); c.Valid() {
				filter = c
			} else {
				fmt.Println("Unknown category:", args[0])
				continue
			}
			current = filtered(records, filter)
			fmt.Println(renderRecords(current, mode))

		case "copy":
			if rec, ok := pick(current, args); ok {
				if err := a.clip.Write(rec.URL); err != nil {
					fmt.Println("Error:", err)
				} else {
					fmt.Println("Copied:", rec.URL)
				}
			}

		case "open":
			if rec, ok := pick(current, args); ok {
				if err := openBrowser(rec.URL); err != nil {
					fmt.Println("Error:", err)
				}
			}

		case "remove":
			rec, ok := pick(current, args)
			if !ok {
				continue
			}
			if err := a.history.Remove(ctx, rec.ID, limit); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			records = removeByID(records, rec.ID)
			current = filtered(records, filter)
			fmt.Println(renderRecords(current, mode))

		case "clear":
			fmt.Print("Remove all upload records? (yes/no) ")
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
				fmt.Println("Cancelled.")
				continue
			}
			if err := a.history.Clear(ctx); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			records = nil
			current = nil
			fmt.Println("History cleared.")

		case "view":
			if len(args) == 0 {
				fmt.Println("Usage: view <grid|list>")
				continue
			}
			switch history.ViewMode(args[0]) {
			case history.ViewModeGrid, history.ViewModeList:
				mode = history.ViewMode(args[0])
				if err := a.history.WriteViewMode(ctx, mode); err != nil {
					fmt.Println("Error:", err)
				}
				fmt.Println(renderRecords(current, mode))
			default:
				fmt.Println("Unknown view mode:", args[0])
			}

		case "prefs":
			a.prefs(ctx)

		case "exit", "quit":
			return 0

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

	return 0
}

func promptStatus(filter classify.Category, mode history.ViewMode) string {
	f := "all"
	if filter != "" {
		f = string(filter)
	}
	return fmt.Sprintf("(%s, %s)", f, mode)
}

func filtered(records []models.UploadRecord, filter classify.Category) []models.UploadRecord {
	if filter == "" {
		return records
	}
	var out []models.UploadRecord
	for _, r := range records {
		if r.Category == filter {
			out = append(out, r)
		}
	}
	return out
}

func removeByID(records []models.UploadRecord, id string) []models.UploadRecord {
	out := records[:0]
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// pick resolves a 1-based index argument against the currently listed
// records.
func pick(current []models.UploadRecord, args []string) (models.UploadRecord, bool) {
	if len(args) == 0 {
		fmt.Println("Usage: <command> <n>")
		return models.UploadRecord{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(current) {
		fmt.Println("No such record:", args[0])
		return models.UploadRecord{}, false
	}
	return current[n-1], true
}
