package commands

import (
	"fmt"
	"io"
	"time"

	"SwapMarket/internal/model"
)

const timeLayout = "2006-01-02 15:04"

func printItemLine(w io.Writer, it model.Item) {
	owner := ""
	if it.Owner != nil {
		owner = "  owner=" + it.Owner.Name
	}
	fmt.Fprintf(w, "- %s  %s  [%s, %s]%s\n", it.ID, it.Title, it.Category, it.Condition, owner)
}

func printItem(w io.Writer, it model.Item) {
	fmt.Fprintf(w, "id:          %s\n", it.ID)
	fmt.Fprintf(w, "title:       %s\n", it.Title)
	fmt.Fprintf(w, "description: %s\n", it.Description)
	fmt.Fprintf(w, "image:       %s\n", it.ImageURL)
	fmt.Fprintf(w, "category:    %s\n", it.Category)
	fmt.Fprintf(w, "condition:   %s\n", it.Condition)
	fmt.Fprintf(w, "owner:       %d\n", it.UserID)
	fmt.Fprintf(w, "created:     %s\n", formatTime(it.CreatedAt))
	fmt.Fprintf(w, "updated:     %s\n", formatTime(it.UpdatedAt))
}

func printItems(w io.Writer, items []model.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Нет вещей")
		return
	}
	for _, it := range items {
		printItemLine(w, it)
	}
	fmt.Fprintf(w, "Всего: %d\n", len(items))
}

func printSwapLine(w io.Writer, sw model.Swap) {
	fmt.Fprintf(w, "- %s  %s  %s -> %s\n", sw.ID, sw.Status, itemTitle(sw.OfferedItem, sw.OfferedItemID), itemTitle(sw.RequestedItem, sw.RequestedItemID))
}

func printSwap(w io.Writer, sw model.Swap) {
	fmt.Fprintf(w, "id:        %s\n", sw.ID)
	fmt.Fprintf(w, "status:    %s\n", sw.Status)
	if sw.RequesterInfo != nil {
		fmt.Fprintf(w, "requester: %s <%s>\n", sw.RequesterInfo.Name, sw.RequesterInfo.Email)
	} else {
		fmt.Fprintf(w, "requester: %d\n", sw.RequesterID)
	}
	fmt.Fprintf(w, "offered:   %s\n", itemTitle(sw.OfferedItem, sw.OfferedItemID))
	fmt.Fprintf(w, "requested: %s\n", itemTitle(sw.RequestedItem, sw.RequestedItemID))
	fmt.Fprintf(w, "created:   %s\n", formatTime(sw.CreatedAt))
	fmt.Fprintf(w, "updated:   %s\n", formatTime(sw.UpdatedAt))
}

func itemTitle(it *model.Item, id string) string {
	if it == nil {
		return id
	}
	return fmt.Sprintf("%s (%s)", it.Title, id)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
