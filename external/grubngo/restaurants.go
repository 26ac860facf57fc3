package grubngo

import (
	"context"
	"fmt"

	"github.com/Morgpo/Grub-N-Go/internal/model"
)

func (c *Client) OpenRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	var out []model.Restaurant
	if err := c.get(ctx, "/restaurants/open/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MenuItems(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	var out []model.MenuItem
	path := fmt.Sprintf("/restaurants/%d/menu-items/", restaurantID)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
