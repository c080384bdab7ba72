package host

import (
	"context"
	"encoding/json"
	"fmt"
)

type getContentItemArgs struct {
	ID uint64 `json:"id"`
}

func (p *Plugin) getContentItem(ctx context.Context, args json.RawMessage) (any, error) {
	var a getContentItemArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("decode %s args: %w", CommandGetContentItem, err)
	}
	return p.svc.FetchItem(ctx, a.ID)
}

func (p *Plugin) getSubscribedItems(ctx context.Context, args json.RawMessage) (any, error) {
	return p.svc.ListInstalledItems()
}
