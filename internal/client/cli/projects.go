package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/poleforge/poleforge/internal/client/models"
)

// Projects lists the authenticated user's pole design projects.
func (a *App) Projects(ctx context.Context) error {
	projects, err := a.api.ListProjects(ctx)
	if err != nil {
		fmt.Println("Could not list projects:", err.Error())
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No projects yet. Use 'newproject' to create one.")
		return nil
	}
	for _, p := range projects {
		fmt.Printf("%s  %-30s %-20s %s\n", p.ID, p.Name, p.Location, p.PoleType)
	}
	return nil
}

// NewProject prompts for project fields and creates the project.
func (a *App) NewProject(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Project name", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	engineer, err := getSimpleText(a.reader, "Engineer name", os.Stdout)
	if err != nil {
		return err
	}
	poleType, err := getSimpleText(a.reader, "Pole type", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.api.CreateProject(ctx, models.ProjectInput{
		Name:         name,
		Location:     location,
		EngineerName: engineer,
		PoleType:     poleType,
	})
	if err != nil {
		fmt.Println("Could not create project:", err.Error())
		return err
	}

	fmt.Println("Created project", p.ID)
	return nil
}
