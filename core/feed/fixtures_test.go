package feed

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example &amp; Co</title>
  <link>https://example.com</link>
  <description><![CDATA[<p>Latest  news , from <b>Example</b></p>]]></description>
  <language>en-us</language>
  <image>
    <url>https://example.com/logo.png</url>
    <title>Example</title>
    <link>https://example.com</link>
  </image>
  <item>
    <title>First post</title>
    <link>https://example.com/1</link>
    <guid>post-1</guid>
    <description><![CDATA[Hello<br/>world ( test )]]></description>
    <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
    <enclosure url="https://example.com/1.jpg" type="image/jpeg" length="100"/>
  </item>
  <item>
    <title>Second</title>
  </item>
</channel>
</rss>`

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Example</title>
  <id>urn:example:feed</id>
  <updated>2024-03-01T10:00:00Z</updated>
  <entry>
    <title>Entry</title>
    <id>urn:example:entry</id>
    <link href="https://example.com/a"/>
    <updated>2024-03-01T09:00:00Z</updated>
    <summary>Summary text</summary>
  </entry>
</feed>`

const podcastFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
<channel>
  <title>Example Cast</title>
  <link>https://example.com/cast</link>
  <description>Talk</description>
  <itunes:image href="https://example.com/cast.jpg"/>
  <itunes:author>Host</itunes:author>
  <item>
    <title>Episode 1</title>
    <link>https://example.com/cast/1</link>
    <enclosure url="https://example.com/cast/1.mp3" type="audio/mpeg" length="1000"/>
    <itunes:image href="https://example.com/cast/1.jpg"/>
  </item>
</channel>
</rss>`

const jsonFixture = `{
  "version": "https://jsonfeed.org/version/1.1",
  "title": "JSON Example",
  "home_page_url": "https://example.com",
  "items": [
    {"id": "1", "url": "https://example.com/j1", "title": "JSON item", "content_text": "Body"}
  ]
}`
