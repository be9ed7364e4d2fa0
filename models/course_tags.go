package models

import "github.com/CPU-commits/Intranet_BCatalog/funct"

type TagChanges struct {
	Remove []string
	Add    []Tag
}

// SplitTagChanges separates flagged deletions from additions. Changes without
// a name are ignored.
func SplitTagChanges(changes []Tag) TagChanges {
	named := funct.Filter(changes, func(tag Tag) bool {
		return tag.Name != ""
	})
	removals := funct.Filter(named, func(tag Tag) bool {
		return tag.IsDeleted
	})
	additions := funct.Filter(named, func(tag Tag) bool {
		return !tag.IsDeleted
	})

	remove, _ := funct.Map(removals, func(tag Tag) (string, error) {
		return tag.Name, nil
	})
	add, _ := funct.Map(additions, func(tag Tag) (Tag, error) {
		return Tag{Name: tag.Name}, nil
	})
	return TagChanges{
		Remove: remove,
		Add:    add,
	}
}

// ReconcileTags drops every tag named in Remove, then appends each tag of Add
// unless an identical entry (same name and flag) is already present.
func ReconcileTags(current []Tag, changes TagChanges) []Tag {
	result := funct.Filter(current, func(tag Tag) bool {
		return !funct.Some(changes.Remove, func(name string) bool {
			return name == tag.Name
		})
	})
	for _, tag := range changes.Add {
		if funct.Some(result, func(x Tag) bool { return x == tag }) {
			continue
		}
		result = append(result, tag)
	}
	if result == nil {
		result = []Tag{}
	}
	return result
}
