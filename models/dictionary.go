package models

type DictionaryEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Author     string `json:"author"`
	Timestamp  string `json:"timestamp"`
}
