package app

// Bare-bones upload page so the API is usable from a browser without a
// separate frontend build.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <title>Golf Swing Analyzer</title>
</head>
<body>
  <h1>Golf Swing Analyzer</h1>
  <input type="file" id="swing-file" accept="video/*">
  <select id="style">
    <option value="classic">Classic</option>
    <option value="power">Power</option>
    <option value="flashy">Flashy</option>
    <option value="minimalist">Minimalist</option>
  </select>
  <button onclick="uploadSwing()">Upload Swing</button>
  <pre id="result"></pre>
  <script>
    async function ensureUser() {
      let uid = localStorage.getItem('userId');
      if (!uid) {
        const r = await fetch('/ensure-user', { method: 'POST' });
        uid = (await r.json()).user_id;
        localStorage.setItem('userId', uid);
      }
      return uid;
    }
    async function uploadSwing() {
      const input = document.getElementById('swing-file');
      if (!input.files.length) { alert('Choose a swing video first'); return; }
      const form = new FormData();
      form.append('file', input.files[0]);
      form.append('user_id', await ensureUser());
      form.append('style', document.getElementById('style').value);
      const res = await fetch('/upload-swing/', { method: 'POST', body: form });
      document.getElementById('result').innerText = JSON.stringify(await res.json(), null, 2);
    }
    ensureUser();
  </script>
</body>
</html>
`
