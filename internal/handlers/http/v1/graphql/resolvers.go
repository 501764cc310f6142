package graphql

import (
	"fmt"
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/gfdmit/board-service/internal/repository"
)

func parseID(raw interface{}) (int64, error) {
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("id must be a string")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be an integer")
	}
	return id, nil
}

// optString pulls an optional string field out of an input object. Absent
// and null both come back nil.
func optString(input map[string]interface{}, key string) *string {
	if v, ok := input[key].(string); ok {
		return &v
	}
	return nil
}

func getBoardQuery(gh *gqlHandler, boardType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: boardType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := parseID(p.Args["id"])
			if err != nil {
				return nil, err
			}
			return gh.svc.GetBoard(p.Context, id)
		},
	}
}

func getBoardsQuery(gh *gqlHandler, boardType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(boardType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return gh.svc.GetBoards(p.Context)
		},
	}
}

func getPostQuery(gh *gqlHandler, postType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: postType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := parseID(p.Args["id"])
			if err != nil {
				return nil, err
			}
			return gh.svc.GetPost(p.Context, id)
		},
	}
}

func getPostsQuery(gh *gqlHandler, postType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(postType),
		Args: graphql.FieldConfigArgument{
			"boardId": &graphql.ArgumentConfig{Type: graphql.ID},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			var boardID *int64
			if raw, ok := p.Args["boardId"]; ok && raw != nil {
				id, err := parseID(raw)
				if err != nil {
					return nil, err
				}
				boardID = &id
			}
			return gh.svc.GetPosts(p.Context, boardID)
		},
	}
}

func createBoardMutation(gh *gqlHandler, boardType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: boardType,
		Args: graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "CreateBoardInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
							"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input, ok := p.Args["input"].(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("input is required")
			}
			title, _ := input["title"].(string)
			description, _ := input["description"].(string)
			return gh.svc.CreateBoard(p.Context, title, description)
		},
	}
}

func updateBoardMutation(gh *gqlHandler, boardType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: boardType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "UpdateBoardInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
							"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := parseID(p.Args["id"])
			if err != nil {
				return nil, err
			}
			input, _ := p.Args["input"].(map[string]interface{})
			return gh.svc.UpdateBoard(p.Context, id, repository.BoardUpdate{
				Title:       optString(input, "title"),
				Description: optString(input, "description"),
			})
		},
	}
}

func deleteBoardMutation(gh *gqlHandler) *graphql.Field {
	return &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := parseID(p.Args["id"])
			if err != nil {
				return nil, err
			}
			if err := gh.svc.DeleteBoard(p.Context, id); err != nil {
				return false, err
			}
			return true, nil
		},
	}
}

func createPostMutation(gh *gqlHandler, postType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: postType,
		Args: graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "CreatePostInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"boardId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
							"title":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
							"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input, ok := p.Args["input"].(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("input is required")
			}
			boardID, err := parseID(input["boardId"])
			if err != nil {
				return nil, err
			}
			title, _ := input["title"].(string)
			content, _ := input["content"].(string)
			return gh.svc.CreatePost(p.Context, boardID, title, content)
		},
	}
}

func updatePostMutation(gh *gqlHandler, postType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: postType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "UpdatePostInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
							"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := parseID(p.Args["id"])
			if err != nil {
				return nil, err
			}
			input, _ := p.Args["input"].(map[string]interface{})
			return gh.svc.UpdatePost(p.Context, id, repository.PostUpdate{
				Title:   optString(input, "title"),
				Content: optString(input, "content"),
			})
		},
	}
}

func deletePostMutation(gh *gqlHandler) *graphql.Field {
	return &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := parseID(p.Args["id"])
			if err != nil {
				return nil, err
			}
			if err := gh.svc.DeletePost(p.Context, id); err != nil {
				return false, err
			}
			return true, nil
		},
	}
}
