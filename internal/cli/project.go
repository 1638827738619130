package cli

import (
	"context"
	"fmt"
)

func (a *App) SaveProject(ctx context.Context) error {
	if a.last == nil {
		fmt.Fprintln(a.out, "Nothing to save. Run a calculator first.")
		return nil
	}
	name, err := GetSimpleText(a.reader, "Project name", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	id, err := a.projects.Create(ctx, name, description, a.last.typ, a.last.inputs, a.last.results)
	if err != nil {
		return a.reportErr(err)
	}
	fmt.Fprintf(a.out, "Saved as project #%d\n", id)
	return nil
}

func (a *App) ListProjects(ctx context.Context) error {
	list, err := a.projects.List(ctx)
	if err != nil {
		return a.reportErr(err)
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No saved projects.")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(a.out, "#%d  %s  (%s, modified %s)\n",
			p.ID, p.Name, p.Type, p.LastModified.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) ShowProject(ctx context.Context) error {
	id, err := GetInt(a.reader, "Project id", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	p, err := a.projects.Load(ctx, id)
	if err != nil {
		return a.reportErr(err)
	}
	fmt.Fprintf(a.out, "%s (%s)\n", p.Name, p.Type)
	if p.Description != "" {
		fmt.Fprintln(a.out, p.Description)
	}
	a.printLines(p.Results)
	return nil
}

func (a *App) DeleteProject(ctx context.Context) error {
	id, err := GetInt(a.reader, "Project id to delete", a.out)
	if err != nil {
		return a.reportErr(err)
	}
	if err := a.projects.Delete(ctx, id); err != nil {
		return a.reportErr(err)
	}
	fmt.Fprintf(a.out, "Deleted project #%d\n", id)
	return nil
}
