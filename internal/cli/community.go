package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/commonsapp/commons/internal/model"
)

func newCommunityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Community management commands",
	}

	cmd.AddCommand(newCommunityAddCmd())
	cmd.AddCommand(newCommunityListCmd())
	cmd.AddCommand(newCommunityUpdateCmd())
	cmd.AddCommand(newCommunityDeleteCmd())

	return cmd
}

func newCommunityAddCmd() *cobra.Command {
	var name, state, imagePath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a community owned by the active identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireSession()
			if err != nil {
				return err
			}
			if !model.IsUSState(state) {
				return fmt.Errorf("--state must be a US state name")
			}

			imageData, err := readImage(imagePath)
			if err != nil {
				return err
			}

			created, err := app.Communities.Add(cmd.Context(), name, state, user.Username, imageData)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(communityResult(*created))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Community name (required)")
	cmd.Flags().StringVar(&state, "state", "", "US state name (required)")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a community image file")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func newCommunityListCmd() *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List communities",
		RunE: func(cmd *cobra.Command, args []string) error {
			var communities []model.Community
			if mine {
				user, err := requireSession()
				if err != nil {
					return err
				}
				communities = app.Communities.ForCreator(user.Username)
			} else {
				communities = app.Communities.All()
			}

			list := CommunityList{Communities: make([]Community, 0, len(communities))}
			for _, c := range communities {
				list.Communities = append(list.Communities, communityResult(c))
			}

			out := NewOutput(cfg.Output)
			out.Print(list)
			return nil
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "Only communities created by the active identity")

	return cmd
}

func newCommunityUpdateCmd() *cobra.Command {
	var name, state, imagePath string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a community you created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireSession()
			if err != nil {
				return err
			}

			id := model.CommunityID(args[0])
			target, err := requireOwned(user.Username, id)
			if err != nil {
				return err
			}

			// Flags left unset keep the current values
			newName := target.Name
			if cmd.Flags().Changed("name") {
				newName = name
			}
			newState := target.State
			if cmd.Flags().Changed("state") {
				if !model.IsUSState(state) {
					return fmt.Errorf("--state must be a US state name")
				}
				newState = state
			}
			newImage := target.ImageData
			if cmd.Flags().Changed("image") {
				newImage, err = readImage(imagePath)
				if err != nil {
					return err
				}
			}

			if err := app.Communities.Update(cmd.Context(), user.Username, id, newName, newState, newImage); err != nil {
				return err
			}

			updated, _ := app.Communities.Get(id)
			out := NewOutput(cfg.Output)
			out.Print(communityResult(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New community name")
	cmd.Flags().StringVar(&state, "state", "", "New US state name")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a new community image file")

	return cmd
}

func newCommunityDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a community you created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireSession()
			if err != nil {
				return err
			}

			id := model.CommunityID(args[0])
			if _, err := requireOwned(user.Username, id); err != nil {
				return err
			}

			if err := app.Communities.Delete(cmd.Context(), user.Username, id); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Community deleted")
			return nil
		},
	}
}

// requireSession returns the active identity or fails the command
func requireSession() (model.User, error) {
	user, ok := app.Sessions.Current()
	if !ok {
		return model.User{}, model.ErrNotAuthenticated
	}
	return user, nil
}

// requireOwned looks up id and checks the registry would not silently drop a
// mutation from this actor
func requireOwned(username string, id model.CommunityID) (model.Community, error) {
	target, ok := app.Communities.Get(id)
	if !ok {
		return model.Community{}, model.ErrCommunityNotFound
	}
	if target.CreatorUsername != username {
		return model.Community{}, model.ErrNotCreator
	}
	return target, nil
}

func readImage(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

func communityResult(c model.Community) Community {
	return Community{
		ID:              string(c.ID),
		Name:            c.Name,
		State:           c.State,
		CreatorUsername: c.CreatorUsername,
		HasImage:        len(c.ImageData) > 0,
		CreatedAt:       c.CreatedAt,
	}
}
