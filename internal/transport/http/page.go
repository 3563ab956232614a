package httptransport

// pageShell is the static page around the display surface. The fragment
// returned by the refresh trigger replaces the content of #app wholesale, so
// the page holds no state of its own.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>User Cards</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; }
.hidden { display: none; }
.error { color: #b00020; margin: 1rem 0; }
.loading { color: #555; margin: 1rem 0; }
.card-list { display: grid; gap: 1rem; }
.user-card { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; }
.user-card h3 { margin-top: 0; }
.empty { color: #555; }
</style>
</head>
<body>
<h1>User Cards</h1>
<button id="refresh">Get Users</button>
<div id="app">
<div id="loading" class="loading hidden">Loading users...</div>
<div id="error" class="error hidden"></div>
<div id="user-cards" class="card-list"></div>
</div>
<script>
document.getElementById('refresh').addEventListener('click', async () => {
  const app = document.getElementById('app');
  document.getElementById('loading').classList.remove('hidden');
  const res = await fetch('/users/refresh', { method: 'POST' });
  app.innerHTML = await res.text();
});
</script>
</body>
</html>
`
