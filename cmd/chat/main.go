package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"worksphere-chatbot/internal/models"
	"worksphere-chatbot/internal/widget"
)

// A terminal stand-in for the web chat widget. Like the widget, it keeps the
// transcript in memory only and silently degrades to scripted answers when
// the backend is unreachable.
func main() {
	backendURL := flag.String("backend", "http://localhost:8080", "chatbot backend base URL")
	flag.Parse()

	controller := widget.NewController(widget.NewClient(*backendURL))

	for _, entry := range controller.Messages() {
		printEntry(entry)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}

		before := len(controller.Messages())
		controller.Submit(context.Background(), scanner.Text())

		for _, entry := range controller.Messages()[before:] {
			if entry.Role == models.RoleBot {
				printEntry(entry)
			}
		}
	}
}

func printEntry(entry models.TranscriptEntry) {
	fmt.Printf("%s [%s]> %s\n", entry.Role, entry.Timestamp.Format("15:04:05"), entry.Text)
}
