package browser

import (
	"context"
	"errors"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/khrees2412/jobcards/internal/dom"
	"github.com/khrees2412/jobcards/internal/extract"
	"github.com/stretchr/testify/require"
)

func TestSearchURL(t *testing.T) {
	require.Equal(t,
		"https://www.linkedin.com/jobs/search/?keywords=senior%20go%20engineer",
		SearchURL("senior go engineer"))
}

func TestQueryTranslation(t *testing.T) {
	sel, opts, err := query(dom.ID("session_key"), nil)
	require.NoError(t, err)
	require.Equal(t, `[id="session_key"]`, sel)
	require.Len(t, opts, 2)

	sel, opts, err = query(dom.CSS("h3 a"), &cdp.Node{})
	require.NoError(t, err)
	require.Equal(t, "h3 a", sel)
	require.Len(t, opts, 3)

	sel, _, err = query(dom.XPath("//button[@type='submit']"), nil)
	require.NoError(t, err)
	require.Equal(t, "//button[@type='submit']", sel)

	_, _, err = query(dom.XPath("//time"), &cdp.Node{})
	require.True(t, errors.Is(err, dom.ErrUnsupported))
}

func TestNode(t *testing.T) {
	n, err := node(nil)
	require.NoError(t, err)
	require.Nil(t, n)

	_, err = node("html")
	require.True(t, errors.Is(err, dom.ErrUnsupported))
}

func TestAttrFromSnapshot(t *testing.T) {
	p := NewPage(context.Background())
	n := &cdp.Node{NodeType: cdp.NodeTypeElement, Attributes: []string{"datetime", "2024-05-01"}}

	value, ok, err := p.Attr(n, "datetime")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2024-05-01", value)

	_, ok, err = p.Attr(n, "title")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsNoise(t *testing.T) {
	require.True(t, isNoise("could not unmarshal event: unknown PrivateNetworkRequestPolicy value"))
	require.False(t, isNoise("websocket closed"))
}

// TestLivePageExtraction runs the extractor against a real browser. Set
// JOBCARDS_LIVE=1 with Chrome installed to enable it.
func TestLivePageExtraction(t *testing.T) {
	if testing.Short() || os.Getenv("JOBCARDS_LIVE") == "" {
		t.Skip("skipping live browser test")
	}

	ctx, cancel := NewContext(context.Background(), true, nil)
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	page := `<html><body><ul>
		<li class="job-card-container"><h3><a href="#">Go Engineer</a></h3><h4>Acme</h4>
			<span class="job-card-list__location">Remote</span><time datetime="2024-05-01">1 day ago</time></li>
		<li class="job-card-container"><h4>No title here</h4></li>
	</ul></body></html>`
	require.NoError(t, chromedp.Run(ctx, chromedp.Navigate("data:text/html,"+url.PathEscape(page))))

	records := extract.ExtractAll(NewPage(ctx), nil)
	require.Len(t, records, 1)
	require.Equal(t, "Go Engineer", records[0].Title)
	require.Equal(t, "Acme", records[0].Company)
	require.Equal(t, "Remote", records[0].Location)
	require.Equal(t, "2024-05-01", records[0].DatePosted)
}
