package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
)

var DateTime = graphql.NewScalar(
	graphql.ScalarConfig{
		Name:        "DateTime",
		Description: "DateTime scalar type",
		Serialize: func(value interface{}) interface{} {
			switch v := value.(type) {
			case time.Time:
				return v.Format(time.RFC3339)
			case *time.Time:
				if v == nil {
					return nil
				}
				return v.Format(time.RFC3339)
			default:
				return nil
			}
		},
	},
)

func (gh *gqlHandler) initSchema() error {
	boardType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Board",
			Fields: graphql.Fields{
				"id":          &graphql.Field{Type: graphql.ID},
				"title":       &graphql.Field{Type: graphql.String},
				"description": &graphql.Field{Type: graphql.String},
				"createdAt":   &graphql.Field{Type: DateTime},
				"updatedAt":   &graphql.Field{Type: DateTime},
			},
		},
	)

	postType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Post",
			Fields: graphql.Fields{
				"id":        &graphql.Field{Type: graphql.ID},
				"boardId":   &graphql.Field{Type: graphql.ID},
				"title":     &graphql.Field{Type: graphql.String},
				"content":   &graphql.Field{Type: graphql.String},
				"createdAt": &graphql.Field{Type: DateTime},
				"updatedAt": &graphql.Field{Type: DateTime},
			},
		},
	)

	queryType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"board":  getBoardQuery(gh, boardType),
				"boards": getBoardsQuery(gh, boardType),
				"post":   getPostQuery(gh, postType),
				"posts":  getPostsQuery(gh, postType),
			},
		},
	)

	mutationType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Mutation",
			Fields: graphql.Fields{
				"createBoard": createBoardMutation(gh, boardType),
				"updateBoard": updateBoardMutation(gh, boardType),
				"deleteBoard": deleteBoardMutation(gh),
				"createPost":  createPostMutation(gh, postType),
				"updatePost":  updatePostMutation(gh, postType),
				"deletePost":  deletePostMutation(gh),
			},
		},
	)

	schemaConfig := graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	}

	schema, err := graphql.NewSchema(schemaConfig)
	if err != nil {
		return err
	}
	gh.schema = schema

	return nil
}
