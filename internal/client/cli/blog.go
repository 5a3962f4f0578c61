package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Add prompts for the blog fields and submits the new entry. Likes may be
// left empty; the server then starts the entry at zero.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	url, err := getSimpleText(a.reader, "Enter url", os.Stdout)
	if err != nil {
		return err
	}

	author, err := getSimpleText(a.reader, "Enter author (optional)", os.Stdout)
	if err != nil {
		return err
	}

	rawLikes, err := getSimpleText(a.reader, "Enter likes (optional)", os.Stdout)
	if err != nil {
		return err
	}

	var likes *int
	if rawLikes != "" {
		n, err := strconv.Atoi(rawLikes)
		if err != nil {
			fmt.Println("likes must be a number")
			return err
		}
		likes = &n
	}

	blog, err := a.api.CreateBlog(ctx, title, url, author, likes)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Created %s\n", blog.ID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	list, err := a.api.ListBlogs(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	for _, b := range list {
		owner := ""
		if b.User != nil {
			owner = b.User.Username
		}
		fmt.Printf("%s  %q %s likes=%d owner=%s\n", b.ID, b.Title, b.URL, b.Likes, owner)
	}
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter blog id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.DeleteBlog(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Deleted")
	return nil
}
