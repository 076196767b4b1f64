package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// entryTypes lists the submission categories the server accepts.
var entryTypes = []string{
	"student_records",
	"faculty_data",
	"course_information",
	"research_data",
	"administrative_info",
	"other",
}

func (a *App) Submit(ctx context.Context) error {

	prompt := fmt.Sprintf("Enter entry type (%s)", strings.Join(entryTypes, ", "))
	entryType, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	content, err := GetMultiline(a.reader, "Enter data content", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	id, err := a.api.Submit(ctx, entryType, content)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Stored as entry %d\n", id)
	return nil
}
