package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/internal/core/domain"
)

const collectionProjects = "projects"

// ProjectRepository is the alternative storage driver for deployments
// where admin write concurrency outgrows the flat-file store: every
// mutation is an atomic single-document operation, so concurrent writers
// cannot lose each other's updates. Store order is kept in an explicit
// position field maintained on insert and reorder.
type ProjectRepository struct {
	col *mongo.Collection
}

type projectDoc struct {
	domain.Project `bson:",inline"`
	Position       int `bson:"position"`
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []projectDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, len(docs))
	for i, d := range docs {
		projects[i] = d.Project
	}
	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc projectDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &doc.Project, nil
}

func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// New projects go to the end of the store order.
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}

	_, err = r.col.InsertOne(ctx, projectDoc{Project: *p, Position: int(count)})
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateProject
	}
	return err
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// position is deliberately left alone: updating a project must not
	// move it in the store order.
	set := bson.M{
		"title":       p.Title,
		"description": p.Description,
		"category":    p.Category,
		"tech_stack":  p.TechStack,
		"github_url":  p.GithubURL,
		"demo_url":    p.DemoURL,
		"images":      p.Images,
		"featured":    p.Featured,
		"published":   p.Published,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// ReplaceAll rewrites the collection to exactly the given projects in the
// given order: positions are reassigned and documents absent from the
// list are removed.
func (r *ProjectRepository) ReplaceAll(ctx context.Context, projects []domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ids := make([]string, len(projects))
	models := make([]mongo.WriteModel, 0, len(projects)+1)
	for i, p := range projects {
		ids[i] = p.ID
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(projectDoc{Project: p, Position: i}).
			SetUpsert(true))
	}
	models = append(models, mongo.NewDeleteManyModel().
		SetFilter(bson.M{"_id": bson.M{"$nin": ids}}))

	_, err := r.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	return err
}
