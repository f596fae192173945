package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category 模块分类，取值固定
type Category string

const (
	CategoryFinance       Category = "finance"
	CategoryConfidence    Category = "confidence"
	CategoryMindfulness   Category = "mindfulness"
	CategoryProductivity  Category = "productivity"
	CategoryRelationships Category = "relationships"
	CategoryHealth        Category = "health"
)

type CategoryInfo struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var categoryTable = map[Category]CategoryInfo{
	CategoryFinance:       {Icon: "wallet", Color: "#2f9e44"},
	CategoryConfidence:    {Icon: "flame", Color: "#f08c00"},
	CategoryMindfulness:   {Icon: "lotus", Color: "#7048e8"},
	CategoryProductivity:  {Icon: "target", Color: "#1c7ed6"},
	CategoryRelationships: {Icon: "heart", Color: "#e64980"},
	CategoryHealth:        {Icon: "leaf", Color: "#0ca678"},
}

func (c Category) Info() CategoryInfo {
	return categoryTable[c]
}

func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if !Category(s).Valid() {
		return fmt.Errorf("line %d: unknown category %q", value.Line, s)
	}
	*c = Category(s)
	return nil
}

// LocalizedText 按语言保存的文本，YAML 中可直接写字符串（视为英文）
type LocalizedText map[string]string

func (t LocalizedText) Get(lang string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	if s, ok := t[DefaultLanguage]; ok {
		return s
	}
	for _, s := range t {
		return s
	}
	return ""
}

func (t *LocalizedText) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*t = LocalizedText{DefaultLanguage: value.Value}
		return nil
	}
	var m map[string]string
	if err := value.Decode(&m); err != nil {
		return err
	}
	*t = m
	return nil
}

type VocabularyItem struct {
	Term    string        `yaml:"term" json:"term"`
	Meaning LocalizedText `yaml:"meaning" json:"meaning"`
}

// LessonDay 某一天的课程内容
type LessonDay struct {
	Number            int              `yaml:"day" json:"day"`
	Title             LocalizedText    `yaml:"title" json:"title"`
	Reading           LocalizedText    `yaml:"reading" json:"reading"`
	Task              LocalizedText    `yaml:"task" json:"task"`
	ReflectionPrompts []LocalizedText  `yaml:"prompts" json:"prompts"`
	Vocabulary        []VocabularyItem `yaml:"vocabulary" json:"vocabulary,omitempty"`
}

// Module 一个 21 天的主题旅程
type Module struct {
	ID          string        `yaml:"id" json:"id"`
	Category    Category      `yaml:"category" json:"category"`
	Title       LocalizedText `yaml:"title" json:"title"`
	Description LocalizedText `yaml:"description" json:"description"`
	TotalDays   int           `yaml:"totalDays" json:"totalDays"`
	Days        []LessonDay   `yaml:"days" json:"-"`
}

func (m *Module) Day(n int) (*LessonDay, bool) {
	for i := range m.Days {
		if m.Days[i].Number == n {
			return &m.Days[i], true
		}
	}
	return nil, false
}

type QuizOption struct {
	ID      string        `yaml:"id" json:"id"`
	Label   LocalizedText `yaml:"label" json:"label"`
	Modules []string      `yaml:"modules" json:"-"`
}

type QuizQuestion struct {
	ID      string        `yaml:"id" json:"id"`
	Prompt  LocalizedText `yaml:"prompt" json:"prompt"`
	Options []QuizOption  `yaml:"options" json:"options"`
}

// Catalog 只读的内容目录
type Catalog struct {
	Modules []Module       `yaml:"modules"`
	Quiz    []QuizQuestion `yaml:"quiz"`
}
