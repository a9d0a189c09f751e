package page

// ActorHTML answers commands the way the browser-side driver does: read the
// command attribute, write the response attribute, raise the response event.
const ActorHTML = `<!DOCTYPE html>
<html webdriver>
<head><title>Example</title></head>
<body>
<script>
	const root = document.documentElement;
	root.addEventListener('webdriverCommand', function () {
		const cmd = JSON.parse(root.getAttribute('command'));
		let resp;
		switch (cmd.name) {
		case 'getTitle':
			resp = { status: 0, value: document.title };
			break;
		case 'newSession':
			resp = { status: 0, value: 'abc-123' };
			break;
		case 'getSessionCapabilities':
			resp = { status: 0, sessionId: cmd.sessionId, value: { browserName: 'x' } };
			break;
		case 'clickElement':
			resp = { status: 0, value: cmd.parameters.id };
			break;
		case 'empty':
			resp = null;
			break;
		default:
			resp = { status: 9, value: { message: 'unknown command: ' + cmd.name } };
		}
		if (resp !== null) {
			root.setAttribute('response', JSON.stringify(resp));
		}
		root.dispatchEvent(new Event('webdriverResponse'));
	});
</script>
</body>
</html>`

const UnmarkedHTML = `<!DOCTYPE html>
<html>
<head><title>No driver</title></head>
<body></body>
</html>`
