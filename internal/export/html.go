package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/handiism/spotify-exporter/internal/model"
)

// footerDateLayout is day/month/year. Swap to "01/02/2006" for month first.
const footerDateLayout = "02/01/2006"

// header returns the document head and the table opening.
//
// The name goes into the <title> and the <h1> as given.
func header(playlistName string) string {
	return `<!doctype html>
<html lang="en">
  <head>
    <!-- Required meta tags -->
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">

    <!-- Bootstrap CSS -->
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@4.5.3/dist/css/bootstrap.min.css" integrity="sha384-TX8t27EcRE3e/ihU7zmQxVncDAy5uIKz4rEkgIXeMed4M0jlfIDPvg6uqKI2xXr2" crossorigin="anonymous">

    <title>Playlist "` + playlistName + `"</title>
  </head>
  <body class="bg-dark">
    <!-- jQuery and Bootstrap Bundle (includes Popper) -->
    <script src="https://code.jquery.com/jquery-3.5.1.slim.min.js" integrity="sha384-DfXdz2htPH0lsSSs5nCTpuj/zy4C+OGpamoFVy38MVBnE+IbbVYUew+OrCXaRkfj" crossorigin="anonymous"></script>
    <script src="https://cdn.jsdelivr.net/npm/bootstrap@4.5.3/dist/js/bootstrap.bundle.min.js" integrity="sha384-ho+j7jyWK8fNQe+A12Hb8AhRq26LrZ/JpcUGGOn+Y7RsweNrtN/tE3MoK7ZeZDyx" crossorigin="anonymous"></script>
    <div class="container-fluid">
      <h1 class="text-light">Playlist "` + playlistName + `"</h1>
        <table class="table table-hover table-dark">
          <thead>
            <tr>
              <th scope="col">#</th>
              <th scope="col">Title</th>
              <th scope="col">Artist</th>
              <th scope="col">Album</th>
            </tr>
          </thead>
          <tbody>
`
}

// row returns one table row.
//
//	<tr>
//	  <th scope="row">1</th>
//	  <td>Title</td><td>Artist</td><td>Album</td>
//	</tr>
func row(position int, track *model.Track) string {
	var sb strings.Builder

	sb.WriteString("            <tr>\n              ")
	sb.WriteString(fmt.Sprintf(`<th scope="row">%d</th>`, position))
	sb.WriteString("\n              ")
	sb.WriteString(fmt.Sprintf("<td>%s</td><td>%s</td>", track.Name, track.Artist))
	sb.WriteString(fmt.Sprintf("<td>%s</td>\n            ", track.Album))
	sb.WriteString("</tr>\n")

	return sb.String()
}

// footer closes the table and the page, stamping the date and the host.
func footer(now time.Time, host, sourceURL string) string {
	var sb strings.Builder

	source := fmt.Sprintf(`<a class="text-light float-right" href="%s">Source on GitHub</a>`, sourceURL)

	sb.WriteString("          </tbody>\n        </table>\n        ")
	sb.WriteString(`<footer class="text-light ml-1">`)
	sb.WriteString(fmt.Sprintf("Updated on %s by %s %s</footer>\n", now.Format(footerDateLayout), host, source))
	sb.WriteString("      </div>\n    </body>\n</html>")

	return sb.String()
}
