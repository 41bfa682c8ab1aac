package catalog

import (
	"fmt"
	"strings"
)

// Difficulty is the LeetCode difficulty rating of a problem.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// AllDifficulties returns the difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

// ParseDifficulty parses a difficulty case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range AllDifficulties() {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want Easy, Medium or Hard)", s)
}

// Problem is a single catalog entry.
type Problem struct {
	ID         string
	Title      string
	Difficulty Difficulty
	Topics     []string
}

// URL returns the LeetCode problem page.
func (p Problem) URL() string {
	return "https://leetcode.com/problems/" + p.ID + "/"
}

// HasTopic reports whether the problem is tagged with topic.
func (p Problem) HasTopic(topic string) bool {
	for _, t := range p.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

func (p Problem) clone() Problem {
	p.Topics = append([]string(nil), p.Topics...)
	return p
}

// p is the seed constructor used by the list tables.
func p(id, title string, d Difficulty, topics ...string) Problem {
	return Problem{ID: id, Title: title, Difficulty: d, Topics: topics}
}
