package loader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/nathoo/kerker/engine/world"
	"github.com/nathoo/kerker/logging"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

var structs = validator.New()

// validate checks the merged defs for referential integrity. Broken room
// graphs are errors. Invalid templates are dropped and dangling catalog
// references are left for the world builder to skip; both are warnings.
func validate(defs *world.Defs) error {
	ve := &ValidationError{}

	if len(defs.Rooms) == 0 {
		ve.Errors = append(ve.Errors, "no rooms defined")
	}

	ids := make(map[int]bool, len(defs.Rooms))
	for _, rd := range defs.Rooms {
		if err := structs.Struct(rd); err != nil {
			ve.Errors = append(ve.Errors, fieldErrors(fmt.Sprintf("room %d", rd.ID), err)...)
		}
		if ids[rd.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate room id %d", rd.ID))
		}
		ids[rd.ID] = true
	}

	for _, rd := range defs.Rooms {
		exits := []struct {
			dir string
			to  int
		}{{"north", rd.North}, {"east", rd.East}, {"south", rd.South}, {"west", rd.West}}
		for _, ex := range exits {
			if ex.to != 0 && !ids[ex.to] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %d exit %s points to undefined room %d", rd.ID, ex.dir, ex.to))
			}
		}
	}

	if defs.Game.Start != 0 && !ids[defs.Game.Start] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start room %d not found in defined rooms", defs.Game.Start))
	}

	for _, name := range sortedKeys(defs.Items) {
		if err := structs.Struct(defs.Items[name]); err != nil {
			ve.Warnings = append(ve.Warnings, fieldErrors("item "+name, err)...)
			delete(defs.Items, name)
		}
	}
	for _, name := range sortedKeys(defs.Enemies) {
		if err := structs.Struct(defs.Enemies[name]); err != nil {
			ve.Warnings = append(ve.Warnings, fieldErrors("enemy "+name, err)...)
			delete(defs.Enemies, name)
		}
	}

	for _, rd := range defs.Rooms {
		for _, key := range append(append([]string{}, rd.Visible...), rd.Hidden...) {
			if _, ok := defs.Items[key]; !ok {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf("room %d references undefined item %q", rd.ID, key))
			}
		}
		for _, key := range rd.Enemies {
			if _, ok := defs.Enemies[key]; !ok {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf("room %d references undefined enemy %q", rd.ID, key))
			}
		}
	}
	if w := defs.Game.StartWeapon; w != "" {
		if _, ok := defs.Items[w]; !ok {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("start weapon %q not in item catalog", w))
		}
	}

	for _, w := range ve.Warnings {
		logging.Log.WithFields(logrus.Fields{"check": "content"}).Warn(w)
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// fieldErrors renders validator failures as "subject: Field failed tag".
func fieldErrors(subject string, err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("%s: %v", subject, err)}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			out = append(out, fmt.Sprintf("%s: %s failed %s=%s", subject, fe.Field(), fe.Tag(), fe.Param()))
		} else {
			out = append(out, fmt.Sprintf("%s: %s failed %s", subject, fe.Field(), fe.Tag()))
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
