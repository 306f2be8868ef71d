package consumer

import (
	"context"
)

// ConsumeArchived joins the snapshot group and consumes in the background until ctx is done.
func (c *consumer) ConsumeArchived(ctx context.Context) error {
	group, err := c.createConsumerGroup(c.groupID())
	if err != nil {
		return err
	}
	c.archivedGroup = group

	handler := &archivedHandler{
		consumer: c,
	}
	topic := c.topic()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)

	return nil
}
