package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is a long-form article. Created through the API, never updated
// or deleted.
type BlogPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Content   string             `bson:"content" json:"content" validate:"required"`
	Tags      []string           `bson:"tags" json:"tags"`
	CoverURL  string             `bson:"cover_url,omitempty" json:"cover_url,omitempty" validate:"omitempty,url"`
	Author    string             `bson:"author,omitempty" json:"author,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Defaults normalizes optional collections so stored documents never carry
// null lists.
func (p *BlogPost) Defaults() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func (p *BlogPost) Validate() error {
	return validate.Struct(p)
}

// CaseStudy documents a piece of client work from problem to impact.
type CaseStudy struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Summary   string             `bson:"summary" json:"summary" validate:"required"`
	Problem   string             `bson:"problem" json:"problem" validate:"required"`
	Solution  string             `bson:"solution" json:"solution" validate:"required"`
	Impact    string             `bson:"impact" json:"impact" validate:"required"`
	Images    []string           `bson:"images" json:"images" validate:"omitempty,dive,url"`
	Links     map[string]string  `bson:"links" json:"links" validate:"omitempty,dive,url"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (cs *CaseStudy) Defaults() {
	if cs.Images == nil {
		cs.Images = []string{}
	}
	if cs.Links == nil {
		cs.Links = map[string]string{}
	}
}

func (cs *CaseStudy) Validate() error {
	return validate.Struct(cs)
}

// Project is a portfolio entry. Featured projects sort ahead of the rest in
// listings.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	TechStack   []string           `bson:"tech_stack" json:"tech_stack"`
	RepoURL     string             `bson:"repo_url,omitempty" json:"repo_url,omitempty" validate:"omitempty,url"`
	LiveURL     string             `bson:"live_url,omitempty" json:"live_url,omitempty" validate:"omitempty,url"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

func (p *Project) Defaults() {
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
}

func (p *Project) Validate() error {
	return validate.Struct(p)
}
