package steamtools

func (s *service) ListInstalledItems() ([]LocalItem, error) {
	var ids []uint64
	if err := s.handle.withClient(func(c Client) error {
		ids = c.SubscribedItems()
		return nil
	}); err != nil {
		return nil, err
	}

	items := make([]LocalItem, 0, len(ids))
	err := s.handle.withClient(func(c Client) error {
		for _, id := range ids {
			if !c.ItemState(id).Has(ItemStateInstalled) {
				continue
			}
			info, ok := c.ItemInstallInfo(id)
			if !ok {
				// An installed item with no install record is an SDK
				// consistency violation. Skip it rather than fail the
				// whole listing.
				s.logger.Warn("installed item has no install info", "item_id", id)
				continue
			}
			items = append(items, LocalItem{
				ID:         id,
				Path:       info.Folder,
				SizeOnDisk: info.SizeOnDisk,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
